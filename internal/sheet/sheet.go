package sheet

import "strings"

// DefaultLocale is assumed for tabs whose title carries no "@locale" suffix.
const DefaultLocale = "en-US"

// RawGrid is a tab exactly as a source returns it. Row 0 is the header.
// Rows may be ragged; trailing empty cells are often omitted by sources.
type RawGrid [][]string

// Sheet is one classified, normalized tab.
type Sheet struct {
	SpreadsheetID    string
	SpreadsheetTitle string
	SheetTitle       string
	Type             Type
	// Columns is the header row, deduplicated, in header order.
	Columns []string
	Data    []Row
}

// Locale returns the locale encoded in the tab title after the last '@'
// (for example "Intents@de-DE"), or DefaultLocale.
func (s Sheet) Locale() string {
	i := strings.LastIndex(s.SheetTitle, "@")
	if i < 0 {
		return DefaultLocale
	}
	locale := strings.TrimSpace(s.SheetTitle[i+1:])
	if locale == "" {
		return DefaultLocale
	}
	return locale
}

// New normalizes grid and builds a Sheet classified by c. The caller decides
// what to do with TypeNone.
func New(c *Classifier, spreadsheetID, spreadsheetTitle, sheetTitle string, grid RawGrid) Sheet {
	var columns []string
	if len(grid) > 0 {
		columns = uniqueColumns(grid[0])
	}
	return Sheet{
		SpreadsheetID:    spreadsheetID,
		SpreadsheetTitle: spreadsheetTitle,
		SheetTitle:       sheetTitle,
		Type:             c.Classify(sheetTitle),
		Columns:          columns,
		Data:             Normalize(grid),
	}
}
