package threatmap

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Keys of the input document are matched exactly.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	CaseSensitive:          true,
}.Froze()

type threatSourcesDocument struct {
	ThreatSources *struct {
		Count  []*uint64 `json:"Count"`
		Source []*string `json:"Source"`
	} `json:"Threat Sources"`
}

// LoadThreatSources reads a JSON document with "Threat Sources" section
// and returns sources in the order of the input arrays.
//
// IP addresses are not validated here, this is a job of resolver.
func LoadThreatSources(r io.Reader) ([]ThreatSource, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read sources: %w", err)
	}

	doc := threatSourcesDocument{}

	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse json: %w", err)
	}

	section := doc.ThreatSources

	switch {
	case section == nil:
		return nil, ErrNoThreatSources
	case section.Count == nil:
		return nil, fmt.Errorf("no Count array: %w", ErrNoThreatSources)
	case section.Source == nil:
		return nil, fmt.Errorf("no Source array: %w", ErrNoThreatSources)
	case len(section.Count) != len(section.Source):
		return nil, fmt.Errorf("%d counts and %d sources: %w",
			len(section.Count),
			len(section.Source),
			ErrSourcesMismatch)
	}

	rv := make([]ThreatSource, len(section.Source))

	for i := range section.Source {
		if section.Count[i] == nil || section.Source[i] == nil {
			return nil, fmt.Errorf("element %d: %w", i, ErrNullElement)
		}

		rv[i] = ThreatSource{
			Index:  i,
			Source: *section.Source[i],
			Count:  *section.Count[i],
		}
	}

	return rv, nil
}
