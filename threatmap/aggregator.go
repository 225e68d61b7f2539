package threatmap

// Aggregator groups resolved sources by LocationKey. It is not safe for
// concurrent use.
type Aggregator struct {
	groups map[LocationKey]*CityAggregate
	order  []LocationKey
}

// Add accounts count for a given place. Names of the place are set only
// once, when a key is seen for the first time.
func (a *Aggregator) Add(city, country string, lat, lon float64, count uint64) {
	key := NewLocationKey(lat, lon)

	if group, ok := a.groups[key]; ok {
		group.Total += count

		return
	}

	a.groups[key] = &CityAggregate{
		Key:     key,
		City:    city,
		Country: country,
		Total:   count,
	}
	a.order = append(a.order, key)
}

// Len returns a number of distinct places.
func (a *Aggregator) Len() int {
	return len(a.order)
}

// Get returns a group for the given key.
func (a *Aggregator) Get(key LocationKey) (CityAggregate, bool) {
	group, ok := a.groups[key]
	if !ok {
		return CityAggregate{}, false
	}

	return *group, true
}

// Aggregates returns all groups in order of their first appearance.
func (a *Aggregator) Aggregates() []CityAggregate {
	rv := make([]CityAggregate, 0, len(a.order))

	for _, key := range a.order {
		rv = append(rv, *a.groups[key])
	}

	return rv
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		groups: map[LocationKey]*CityAggregate{},
	}
}

// Aggregate resolves every source with the given provider and groups
// them. Sources which cannot be resolved are skipped without any
// notice.
func Aggregate(sources []ThreatSource, provider Provider) *Aggregator {
	rv := NewAggregator()

	for _, source := range sources {
		result, err := resolveSource(provider, source)
		if err != nil {
			continue
		}

		rv.Add(*result.City, *result.Country, *result.Latitude, *result.Longitude, source.Count)
	}

	return rv
}
