package csvdb

import (
	"encoding/csv"
	"io"

	"github.com/juju/errors"
)

// CSVWriter writes locations file: Header first and then records.
type CSVWriter struct {
	writer        *csv.Writer
	headerWritten bool
}

func (cw *CSVWriter) Write(record *Record) error {
	if err := cw.WriteHeader(); err != nil {
		return err
	}

	if err := cw.writer.Write(record.Row()); err != nil {
		return errors.Annotate(err, "Cannot write record")
	}

	return nil
}

// WriteHeader writes Header if it was not written yet.
func (cw *CSVWriter) WriteHeader() error {
	if cw.headerWritten {
		return nil
	}

	if err := cw.writer.Write(Header); err != nil {
		return errors.Annotate(err, "Cannot write header")
	}

	cw.headerWritten = true

	return nil
}

// Flush writes header if nothing was written so far and flushes
// buffered data.
func (cw *CSVWriter) Flush() error {
	if err := cw.WriteHeader(); err != nil {
		return err
	}

	cw.writer.Flush()

	if err := cw.writer.Error(); err != nil {
		return errors.Annotate(err, "Cannot flush records")
	}

	return nil
}

// NewCSVWriter wraps given io.Writer.
func NewCSVWriter(filefp io.Writer) *CSVWriter {
	return &CSVWriter{writer: csv.NewWriter(filefp)}
}
