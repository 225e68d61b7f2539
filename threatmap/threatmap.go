package threatmap

import (
	"fmt"
	"os"

	"github.com/9seconds/threatmap/csvdb"
	"github.com/spf13/afero"
)

const (
	DefaultSourcesPath  = "threat_sources.json"
	DefaultDatabasePath = "geoip2/city.mmdb"
	DefaultOutputPath   = "locations.csv"
)

// Paths is a set of files a single run works with.
type Paths struct {
	Sources string
	Output  string
}

// Threatmap wires a provider with a filesystem. A single Run reads
// sources, resolves and groups them and rewrites an output file.
type Threatmap struct {
	fs       afero.Fs
	provider Provider
	logger   Logger
}

// Run executes a pipeline once and returns a number of written
// location rows. Any error is fatal for the whole run; output file may
// be left in inconsistent state then.
func (t *Threatmap) Run(paths Paths) (int, error) {
	sources, err := t.loadSources(paths.Sources)
	if err != nil {
		return 0, err
	}

	t.logger.SourcesLoaded(paths.Sources, len(sources))

	aggregator := Aggregate(sources, t.provider)

	if err := t.writeLocations(paths.Output, aggregator.Aggregates()); err != nil {
		return 0, err
	}

	t.logger.LocationsWritten(paths.Output, aggregator.Len())

	return aggregator.Len(), nil
}

func (t *Threatmap) loadSources(path string) ([]ThreatSource, error) {
	fp, err := t.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open sources file: %w", err)
	}

	defer fp.Close()

	sources, err := LoadThreatSources(fp)
	if err != nil {
		return nil, fmt.Errorf("cannot load sources from %s: %w", path, err)
	}

	return sources, nil
}

func (t *Threatmap) writeLocations(path string, aggregates []CityAggregate) error {
	fp, err := t.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("cannot open output file: %w", err)
	}

	writer := csvdb.NewCSVWriter(fp)

	for i := range aggregates {
		record := &csvdb.Record{
			City:    aggregates[i].City,
			Country: aggregates[i].Country,
			Count:   aggregates[i].Total,
			Lat:     aggregates[i].Key.Lat,
			Lon:     aggregates[i].Key.Lon,
		}

		if err := writer.Write(record); err != nil {
			fp.Close()

			return fmt.Errorf("cannot write to %s: %w", path, err)
		}
	}

	if err := writer.Flush(); err != nil {
		fp.Close()

		return fmt.Errorf("cannot flush %s: %w", path, err)
	}

	if err := fp.Close(); err != nil {
		return fmt.Errorf("cannot close %s: %w", path, err)
	}

	return nil
}

func New(fs afero.Fs, provider Provider, logger Logger) *Threatmap {
	return &Threatmap{
		fs:       fs,
		provider: provider,
		logger:   logger,
	}
}
