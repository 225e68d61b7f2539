package threatmap

import "strconv"

// CoordinatePrecision is a number of digits after the decimal point
// which are kept in LocationKey.
const CoordinatePrecision = 5

// ThreatSource is a single IP address from the input document with its
// count. Index is a position in both input arrays.
type ThreatSource struct {
	Index  int
	Source string
	Count  uint64
}

// ProviderLookupResult is what provider knows about an IP address.
// A nil field means that database has no such data. A name which is
// present but empty is still present.
type ProviderLookupResult struct {
	City      *string
	Country   *string
	Latitude  *float64
	Longitude *float64
}

// OK tells if result has everything required to be aggregated.
func (p ProviderLookupResult) OK() bool {
	return p.City != nil && p.Country != nil && p.Latitude != nil && p.Longitude != nil
}

// LocationKey identifies a place. Coordinates are formatted with
// CoordinatePrecision digits so two lookups are the same place only if
// their formatted coordinates are identical.
type LocationKey struct {
	Lat string
	Lon string
}

// NewLocationKey formats coordinates with strconv. Ties are resolved
// by strconv rounding of the exact binary value.
func NewLocationKey(lat, lon float64) LocationKey {
	return LocationKey{
		Lat: strconv.FormatFloat(lat, 'f', CoordinatePrecision, 64),
		Lon: strconv.FormatFloat(lon, 'f', CoordinatePrecision, 64),
	}
}

// CityAggregate is a group of sources which resolved into the same
// LocationKey. City and Country are taken from the first source of the
// group.
type CityAggregate struct {
	Key     LocationKey
	City    string
	Country string
	Total   uint64
}
