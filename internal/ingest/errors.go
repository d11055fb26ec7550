package ingest

import (
	"errors"
	"fmt"
)

// ErrNoSheets is wrapped by the IngestionError returned when both sources
// together produced no classified sheet.
var ErrNoSheets = errors.New("there are no spreadsheets to use")

// IngestionError is the only error Ingest returns. Op names the step that
// failed.
type IngestionError struct {
	Op  string
	Err error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingest: %s: %v", e.Op, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// asIngestionError returns err unchanged if it already is an
// *IngestionError, otherwise it wraps it under op.
func asIngestionError(op string, err error) error {
	var ie *IngestionError
	if errors.As(err, &ie) {
		return err
	}
	return &IngestionError{Op: op, Err: err}
}
