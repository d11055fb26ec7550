package ingest

import "regexp"

// Source lists what to ingest.
type Source struct {
	// Spreadsheets mixes remote spreadsheet URLs with local paths.
	Spreadsheets []string
	// RootPath anchors relative local paths.
	RootPath string
	// Credentials is the service-account JSON for the remote API. Without it
	// remote references are skipped.
	Credentials []byte
}

var spreadsheetURL = regexp.MustCompile(`docs\.google\.com/spreadsheets/d/([^/]+)/`)

// SpreadsheetID extracts the id from a remote spreadsheet URL.
func SpreadsheetID(ref string) (string, bool) {
	m := spreadsheetURL.FindStringSubmatch(ref)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// split separates remote spreadsheet ids from local paths, keeping order.
func (s Source) split() (ids []string, paths []string) {
	for _, ref := range s.Spreadsheets {
		if id, ok := SpreadsheetID(ref); ok {
			ids = append(ids, id)
			continue
		}
		paths = append(paths, ref)
	}
	return ids, paths
}
