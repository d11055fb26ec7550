package ingest

import (
	"context"
	"fmt"

	"github.com/specialistvlad/voxgrid/internal/sheet"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleClient reads spreadsheets through the Google Sheets v4 API.
type GoogleClient struct {
	svc *sheets.Service
}

// NewGoogleClient authenticates with a service-account JSON key and
// read-only scope. It matches ClientFactory.
func NewGoogleClient(ctx context.Context, credentials []byte) (SheetsClient, error) {
	return newGoogleClient(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
}

func newGoogleClient(ctx context.Context, opts ...option.ClientOption) (*GoogleClient, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &GoogleClient{svc: svc}, nil
}

// Spreadsheet implements SheetsClient.
func (c *GoogleClient) Spreadsheet(ctx context.Context, id string) (Spreadsheet, error) {
	resp, err := c.svc.Spreadsheets.Get(id).
		Fields("spreadsheetId", "properties.title", "sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return Spreadsheet{}, fmt.Errorf("failed to get spreadsheet %s: %w", id, err)
	}

	out := Spreadsheet{ID: id}
	if resp.Properties != nil {
		out.Title = resp.Properties.Title
	}
	for _, s := range resp.Sheets {
		if s.Properties != nil {
			out.Tabs = append(out.Tabs, s.Properties.Title)
		}
	}
	return out, nil
}

// Values implements SheetsClient. Cells are rendered as the API formats
// them.
func (c *GoogleClient) Values(ctx context.Context, id, tab string) (sheet.RawGrid, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(id, ValueRange(tab)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get values of %s!%s: %w", id, tab, err)
	}

	grid := make(sheet.RawGrid, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell != nil {
				cells[i] = fmt.Sprint(cell)
			}
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
