package ingest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/fsutil"
	"github.com/specialistvlad/voxgrid/internal/sheet"
	"github.com/xuri/excelize/v2"
)

// WorkbookExtension is the only local format read.
const WorkbookExtension = ".xlsx"

// localFiles resolves paths against root into workbook files, in order.
// Missing paths are skipped; directories expand to the workbooks they
// contain.
func localFiles(ctx context.Context, root string, paths []string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	var out []string
	for _, ref := range paths {
		path := fsutil.Resolve(root, ref)
		if !fsutil.Exists(path) {
			logger.Debug("Skipping missing spreadsheet path.", "path", path)
			continue
		}
		files, err := fsutil.FindFilesByExtension(path, WorkbookExtension)
		if err != nil {
			return nil, &IngestionError{Op: "list " + path, Err: err}
		}
		out = append(out, files...)
	}
	return out, nil
}

// readWorkbook returns every tab of one workbook in workbook order,
// TypeNone included.
func (in *Ingestor) readWorkbook(file string) (_ []sheet.Sheet, err error) {
	f, err := excelize.OpenFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	title := filepath.Base(file)
	var out []sheet.Sheet
	for _, tab := range f.GetSheetList() {
		rows, err := f.GetRows(tab)
		if err != nil {
			return nil, fmt.Errorf("failed to read tab %q: %w", tab, err)
		}
		out = append(out, sheet.New(in.classifier, file, title, tab, sheet.RawGrid(rows)))
	}
	return out, nil
}
