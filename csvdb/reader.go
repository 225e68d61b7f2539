package csvdb

import (
	"encoding/csv"
	"io"

	"github.com/juju/errors"
)

// CSVReader is a wrapper over csv.Reader to convert each row of
// locations file into Record instance.
type CSVReader struct {
	reader     *csv.Reader
	headerSeen bool
}

func (cr *CSVReader) Read() (*Record, error) {
	if !cr.headerSeen {
		if err := cr.readHeader(); err != nil {
			return nil, err
		}
	}

	data, err := cr.reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Annotate(err, "Cannot read new record")
	}

	record, err := NewRecord(data)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot parse record")
	}

	return record, nil
}

// ReadAll reads records until the end of file.
func (cr *CSVReader) ReadAll() ([]*Record, error) {
	rv := []*Record{}

	for {
		record, err := cr.Read()
		switch {
		case err == io.EOF:
			return rv, nil
		case err != nil:
			return nil, err
		}

		rv = append(rv, record)
	}
}

func (cr *CSVReader) readHeader() error {
	header, err := cr.reader.Read()
	if err != nil {
		if err == io.EOF {
			return errors.New("Header is missing")
		}
		return errors.Annotate(err, "Cannot read header")
	}

	for i, v := range Header {
		if header[i] != v {
			return errors.Errorf("Unexpected header %v", header)
		}
	}

	cr.headerSeen = true

	return nil
}

// NewCSVReader converts given io.Reader instance into CSVReader.
func NewCSVReader(filefp io.Reader) *CSVReader {
	reader := csv.NewReader(filefp)
	reader.FieldsPerRecord = len(Header)

	return &CSVReader{reader: reader}
}
