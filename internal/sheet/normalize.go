package sheet

import "strings"

// Normalize turns a raw grid into header-keyed rows. The header row is
// consumed and never emitted, so len(result) == len(grid)-1 for any grid
// with a header. Short rows are padded with undefined cells; cells past the
// header width have no key and are dropped. When a header name repeats, the
// rightmost column wins.
//
// Normalize never fails.
func Normalize(grid RawGrid) []Row {
	if len(grid) == 0 {
		return []Row{}
	}
	header := grid[0]
	columns := uniqueColumns(header)

	rows := make([]Row, 0, len(grid)-1)
	for _, raw := range grid[1:] {
		values := make(map[string]any, len(columns))
		for i, name := range header {
			var cell string
			if i < len(raw) {
				cell = raw[i]
			}
			values[name] = Coerce(cell)
		}
		rows = append(rows, Row{columns: columns, values: values})
	}
	return rows
}

// Coerce maps a cell's text onto its typed value: "true"/"yes" and
// "false"/"no" (any case) become booleans, the empty string becomes nil, and
// everything else is returned unchanged.
func Coerce(cell string) any {
	switch strings.ToLower(cell) {
	case "true", "yes":
		return true
	case "false", "no":
		return false
	case "":
		return nil
	}
	return cell
}
