package providers

import (
	"fmt"
	"net"
	"sync"

	"github.com/9seconds/threatmap/threatmap"
	"github.com/oschwald/geoip2-golang"
	"github.com/spf13/afero"
)

type geoip2Provider struct {
	db     *geoip2.Reader
	dbLock sync.RWMutex
}

func (g *geoip2Provider) Name() string {
	return NameGeoIP2
}

func (g *geoip2Provider) Shutdown() {
	g.dbLock.Lock()
	defer g.dbLock.Unlock()

	if g.db != nil {
		g.db.Close()
		g.db = nil
	}
}

func (g *geoip2Provider) Open(fs afero.Fs, path string) error {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("cannot read a database file: %w", err)
	}

	db, err := geoip2.FromBytes(content)
	if err != nil {
		return fmt.Errorf("cannot initialize a reader of geoip2: %w", err)
	}

	g.dbLock.Lock()
	defer g.dbLock.Unlock()

	if g.db != nil {
		g.db.Close()
	}

	g.db = db

	return nil
}

func (g *geoip2Provider) Lookup(ip net.IP) (threatmap.ProviderLookupResult, error) {
	g.dbLock.RLock()
	defer g.dbLock.RUnlock()

	rv := threatmap.ProviderLookupResult{}

	if g.db == nil {
		return rv, ErrDatabaseIsNotReadyYet
	}

	city, err := g.db.City(ip)
	if err != nil {
		return rv, fmt.Errorf("cannot lookup this ip address: %w", err)
	}

	rv.City = displayName(city.City.Names)
	rv.Country = displayName(city.Country.Names)

	// typed record has no way to say that location is absent
	if city.Location.Latitude != 0 || city.Location.Longitude != 0 {
		lat := city.Location.Latitude
		lon := city.Location.Longitude
		rv.Latitude = &lat
		rv.Longitude = &lon
	}

	return rv, nil
}

// NewGeoIP2 returns a provider which reads GeoIP2/GeoLite2 City
// databases with a typed reader.
//
//   Identifier: geoip2
//   Provider type: offline
//
// Please pay attention that (0, 0) location is treated as absent.
// Use maxmind provider if this matters.
func NewGeoIP2() threatmap.OfflineProvider {
	return &geoip2Provider{}
}
