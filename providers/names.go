package providers

const (
	// Identifier for a local MaxMind DB read with maxminddb decoder.
	NameMaxmind = "maxmind"

	// Identifier for a local GeoIP2 City database read with typed
	// geoip2 reader.
	NameGeoIP2 = "geoip2"

	// Identifier for MaxMind GeoLite2 downloader.
	NameMaxmindLite = "maxmind_lite"
)

// DisplayLocale is a key of names maps which is used for city and
// country names.
const DisplayLocale = "en"

func displayName(names map[string]string) *string {
	if name, ok := names[DisplayLocale]; ok {
		return &name
	}

	return nil
}
