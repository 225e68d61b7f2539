package providers

import (
	"fmt"
	"net"
	"sync"

	"github.com/9seconds/threatmap/threatmap"
	"github.com/oschwald/maxminddb-golang"
	"github.com/spf13/afero"
)

type maxmindLookupResult struct {
	City struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
	Country struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"country"`
	Location struct {
		Latitude  *float64 `maxminddb:"latitude"`
		Longitude *float64 `maxminddb:"longitude"`
	} `maxminddb:"location"`
}

type maxmindBase struct {
	dbReader     *maxminddb.Reader
	dbReaderLock sync.RWMutex
}

func (m *maxmindBase) Name() string {
	return NameMaxmind
}

func (m *maxmindBase) Shutdown() {
	m.dbReaderLock.Lock()
	defer m.dbReaderLock.Unlock()

	if m.dbReader != nil {
		m.dbReader.Close()
		m.dbReader = nil
	}
}

func (m *maxmindBase) Open(fs afero.Fs, path string) error {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("cannot read a database file: %w", err)
	}

	reader, err := maxminddb.FromBytes(content)
	if err != nil {
		return fmt.Errorf("cannot initialize a reader of maxminddb: %w", err)
	}

	m.dbReaderLock.Lock()
	defer m.dbReaderLock.Unlock()

	if m.dbReader != nil {
		m.dbReader.Close()
	}

	m.dbReader = reader

	return nil
}

func (m *maxmindBase) Lookup(ip net.IP) (threatmap.ProviderLookupResult, error) {
	m.dbReaderLock.RLock()
	defer m.dbReaderLock.RUnlock()

	rv := threatmap.ProviderLookupResult{}

	if m.dbReader == nil {
		return rv, ErrDatabaseIsNotReadyYet
	}

	record := maxmindLookupResult{}

	_, ok, err := m.dbReader.LookupNetwork(ip, &record)

	switch {
	case err != nil:
		return rv, fmt.Errorf("cannot lookup this ip address: %w", err)
	case !ok:
		return rv, ErrAddressNotFound
	}

	rv.City = displayName(record.City.Names)
	rv.Country = displayName(record.Country.Names)
	rv.Latitude = record.Location.Latitude
	rv.Longitude = record.Location.Longitude

	return rv, nil
}

// NewMaxmind returns a provider which reads MaxMind DB files of City
// schema.
//
//   Identifier: maxmind
//   Provider type: offline
//
// Coordinates are decoded as optional values so a record without
// location is never mistaken for (0, 0).
func NewMaxmind() threatmap.OfflineProvider {
	return &maxmindBase{}
}
