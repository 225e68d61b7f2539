package csvdb

import (
	"strconv"

	"github.com/juju/errors"
)

// Header is the first row of every locations file.
var Header = []string{"City Name", "Country Name", "Count", "Lat", "Lon"}

// Record presents a single row of locations file.
type Record struct {
	City    string
	Country string
	Count   uint64
	Lat     string
	Lon     string
}

// Row returns fields in the order of Header.
func (r *Record) Row() []string {
	return []string{
		r.City,
		r.Country,
		strconv.FormatUint(r.Count, 10),
		r.Lat,
		r.Lon,
	}
}

// NewRecord parses CSV row into Record.
func NewRecord(row []string) (*Record, error) {
	if len(row) != len(Header) {
		return nil, errors.Errorf("Expected %d fields, got %d", len(Header), len(row))
	}

	count, err := strconv.ParseUint(row[2], 10, 64)
	if err != nil {
		return nil, errors.Annotatef(err, "Incorrect count %s", row[2])
	}

	for _, v := range row[3:] {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return nil, errors.Annotatef(err, "Incorrect coordinate %s", v)
		}
	}

	return &Record{
		City:    row[0],
		Country: row[1],
		Count:   count,
		Lat:     row[3],
		Lon:     row[4],
	}, nil
}
