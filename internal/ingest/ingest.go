package ingest

import (
	"context"

	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/sheet"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Ingestor turns a Source into classified sheets.
type Ingestor struct {
	classifier *sheet.Classifier
	newClient  ClientFactory
	limiter    *rate.Limiter
}

// Option configures an Ingestor.
type Option func(*Ingestor)

// WithClassifier replaces the default classification table.
func WithClassifier(c *sheet.Classifier) Option {
	return func(in *Ingestor) { in.classifier = c }
}

// WithClientFactory replaces the Google Sheets client.
func WithClientFactory(f ClientFactory) Option {
	return func(in *Ingestor) { in.newClient = f }
}

// WithRateLimit throttles remote requests to rps per second with the given
// burst. rps <= 0 leaves requests unthrottled.
func WithRateLimit(rps float64, burst int) Option {
	return func(in *Ingestor) {
		if rps <= 0 {
			in.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		in.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New returns an Ingestor using the default classifier and the Google
// Sheets client.
func New(opts ...Option) *Ingestor {
	in := &Ingestor{
		classifier: sheet.DefaultClassifier(),
		newClient:  NewGoogleClient,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Ingest fetches remote and local spreadsheets and returns their classified
// tabs, remote first, then local in reference order. Tabs classified as
// none are dropped. The remote fetch and each workbook read run as tasks
// of one group: any failure fails the whole ingestion. Every failure,
// including an empty result, is an *IngestionError.
func (in *Ingestor) Ingest(ctx context.Context, src Source) ([]sheet.Sheet, error) {
	logger := ctxlog.FromContext(ctx)
	ids, paths := src.split()

	files, err := localFiles(ctx, src.RootPath, paths)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)

	var remote []sheet.Sheet
	switch {
	case len(ids) == 0:
	case len(src.Credentials) == 0:
		logger.Warn("Remote spreadsheets given without credentials, skipping them.", "count", len(ids))
	default:
		g.Go(func() error {
			sheets, err := in.fetchRemote(gctx, src.Credentials, ids)
			if err != nil {
				return err
			}
			logger.Debug("Remote spreadsheets fetched.", "spreadsheets", len(ids), "tabs", len(sheets))
			remote = sheets
			return nil
		})
	}

	local := make([][]sheet.Sheet, len(files))
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return &IngestionError{Op: "read " + file, Err: err}
			}
			sheets, err := in.readWorkbook(file)
			if err != nil {
				return &IngestionError{Op: "read " + file, Err: err}
			}
			logger.Debug("Workbook read.", "file", file, "sheets", len(sheets))
			local[i] = sheets
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, asIngestionError("ingest", err)
	}

	all := remote
	for _, sheets := range local {
		all = append(all, sheets...)
	}

	var out []sheet.Sheet
	for _, s := range all {
		if s.Type == sheet.TypeNone {
			logger.Debug("Dropping unclassified tab.", "spreadsheet", s.SpreadsheetTitle, "tab", s.SheetTitle)
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, &IngestionError{Op: "collect", Err: ErrNoSheets}
	}
	return out, nil
}

// fetchRemote fetches every tab list, then every classified tab,
// concurrently. Tabs classified as none are never read. The first failure
// cancels the remaining requests.
func (in *Ingestor) fetchRemote(ctx context.Context, credentials []byte, ids []string) ([]sheet.Sheet, error) {
	client, err := in.newClient(ctx, credentials)
	if err != nil {
		return nil, &IngestionError{Op: "connect", Err: err}
	}

	books := make([]Spreadsheet, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			if err := in.wait(gctx); err != nil {
				return &IngestionError{Op: "fetch spreadsheet " + id, Err: err}
			}
			book, err := client.Spreadsheet(gctx, id)
			if err != nil {
				return &IngestionError{Op: "fetch spreadsheet " + id, Err: err}
			}
			books[i] = book
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, asIngestionError("fetch spreadsheets", err)
	}

	grids := make([][]sheet.RawGrid, len(books))
	for i, book := range books {
		grids[i] = make([]sheet.RawGrid, len(book.Tabs))
	}
	g, gctx = errgroup.WithContext(ctx)
	for i, book := range books {
		for j, tab := range book.Tabs {
			if in.classifier.Classify(tab) == sheet.TypeNone {
				continue
			}
			g.Go(func() error {
				if err := in.wait(gctx); err != nil {
					return &IngestionError{Op: "fetch values " + ValueRange(tab), Err: err}
				}
				grid, err := client.Values(gctx, ids[i], tab)
				if err != nil {
					return &IngestionError{Op: "fetch values " + ValueRange(tab), Err: err}
				}
				grids[i][j] = grid
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, asIngestionError("fetch values", err)
	}

	var out []sheet.Sheet
	for i, book := range books {
		for j, tab := range book.Tabs {
			if in.classifier.Classify(tab) == sheet.TypeNone {
				continue
			}
			out = append(out, sheet.New(in.classifier, ids[i], book.Title, tab, grids[i][j]))
		}
	}
	return out, nil
}

func (in *Ingestor) wait(ctx context.Context) error {
	if in.limiter == nil {
		return ctx.Err()
	}
	return in.limiter.Wait(ctx)
}
