package providers

import (
	"bytes"
	"net"

	"github.com/maxmind/mmdbwriter"
	"github.com/maxmind/mmdbwriter/mmdbtype"
	"github.com/spf13/afero"
)

const testDatabasePath = "/geoip2/city.mmdb"

func cityRecord(city, country string) mmdbtype.Map {
	rv := mmdbtype.Map{}

	if city != "" {
		rv["city"] = mmdbtype.Map{
			"names": mmdbtype.Map{
				"en": mmdbtype.String(city),
				"de": mmdbtype.String(city + " (de)"),
			},
		}
	}

	if country != "" {
		rv["country"] = mmdbtype.Map{
			"iso_code": mmdbtype.String("XX"),
			"names": mmdbtype.Map{
				"en": mmdbtype.String(country),
			},
		}
	}

	return rv
}

func locatedRecord(city, country string, lat, lon float64) mmdbtype.Map {
	rv := cityRecord(city, country)
	rv["location"] = mmdbtype.Map{
		"latitude":        mmdbtype.Float64(lat),
		"longitude":       mmdbtype.Float64(lon),
		"accuracy_radius": mmdbtype.Uint16(100),
	}

	return rv
}

// emptyNamesRecord has an empty "en" city name and a country without
// "en" name at all.
func emptyNamesRecord(lat, lon float64) mmdbtype.Map {
	return mmdbtype.Map{
		"city": mmdbtype.Map{
			"names": mmdbtype.Map{"en": mmdbtype.String("")},
		},
		"country": mmdbtype.Map{
			"names": mmdbtype.Map{"de": mmdbtype.String("Deutschland")},
		},
		"location": mmdbtype.Map{
			"latitude":  mmdbtype.Float64(lat),
			"longitude": mmdbtype.Float64(lon),
		},
	}
}

// makeTestDatabase writes a small City database into a memory
// filesystem.
func makeTestDatabase() afero.Fs {
	tree, err := mmdbwriter.New(mmdbwriter.Options{
		DatabaseType: "GeoIP2-City",
		RecordSize:   24,
	})
	if err != nil {
		panic(err)
	}

	records := map[string]mmdbtype.Map{
		"81.2.69.142/31":      locatedRecord("London", "United Kingdom", 51.5142, -0.0931),
		"2001:4860:4860::/48": locatedRecord("Mountain View", "United States", 37.751, -97.822),
		"9.9.9.0/24":          locatedRecord("Nowhere", "Atlantic", 0, 0),
		"1.1.1.0/24":          cityRecord("Sydney", "Australia"),
		"8.8.8.0/24":          locatedRecord("", "United States", 37.751, -97.822),
		"4.4.4.0/24":          emptyNamesRecord(52.52, 13.405),
	}

	for cidr, record := range records {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(err)
		}

		if err := tree.Insert(network, record); err != nil {
			panic(err)
		}
	}

	buf := &bytes.Buffer{}

	if _, err := tree.WriteTo(buf); err != nil {
		panic(err)
	}

	fs := afero.NewMemMapFs()

	if err := afero.WriteFile(fs, testDatabasePath, buf.Bytes(), 0644); err != nil {
		panic(err)
	}

	if err := afero.WriteFile(fs, "/broken.mmdb", []byte("not a database"), 0644); err != nil {
		panic(err)
	}

	return fs
}
