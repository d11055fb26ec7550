package ingest

import (
	"context"
	"strings"

	"github.com/specialistvlad/voxgrid/internal/sheet"
)

// Spreadsheet is the metadata of one remote spreadsheet.
type Spreadsheet struct {
	ID    string
	Title string
	// Tabs are the tab titles in spreadsheet order.
	Tabs []string
}

// SheetsClient is the remote spreadsheet API as ingestion sees it.
type SheetsClient interface {
	Spreadsheet(ctx context.Context, id string) (Spreadsheet, error)
	Values(ctx context.Context, id, tab string) (sheet.RawGrid, error)
}

// ClientFactory builds a SheetsClient from service-account credentials.
type ClientFactory func(ctx context.Context, credentials []byte) (SheetsClient, error)

// ValueRange is the A1 range read from every tab. The title is always
// quoted so spaces and punctuation survive; quotes inside it are doubled.
func ValueRange(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'!A1:ZZZ"
}
