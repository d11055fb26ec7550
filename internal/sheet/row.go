package sheet

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Row is one data row keyed by header name. Values are bool, string, or nil
// for an empty or missing cell.
type Row struct {
	columns []string
	values  map[string]any
}

// Value returns the value under key, or nil.
func (r Row) Value(key string) any {
	return r.values[key]
}

// String returns the cell as text. Booleans render as "true"/"false" and
// undefined cells as "".
func (r Row) String(key string) string {
	switch v := r.values[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// Bool reports whether the cell was coerced to true.
func (r Row) Bool(key string) bool {
	b, _ := r.values[key].(bool)
	return b
}

// List splits a comma separated cell into trimmed, non-empty items.
func (r Row) List(key string) []string {
	raw := r.String(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsEmpty reports whether every cell of the row is undefined.
func (r Row) IsEmpty() bool {
	for _, v := range r.values {
		if v != nil {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the row as an object whose keys follow header order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[c])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func uniqueColumns(header []string) []string {
	seen := make(map[string]struct{}, len(header))
	out := make([]string, 0, len(header))
	for _, h := range header {
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}
