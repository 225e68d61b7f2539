package threatmap

import "errors"

var (
	// ErrNoThreatSources is returned if the input document has no
	// "Threat Sources" section or one of its arrays is absent.
	ErrNoThreatSources = errors.New("threat sources section is missing")

	// ErrSourcesMismatch is returned if Count and Source arrays have
	// different lengths.
	ErrSourcesMismatch = errors.New("count and source arrays have different lengths")

	// ErrNullElement is returned if Count or Source array has a null
	// element.
	ErrNullElement = errors.New("null element in threat sources")

	errInvalidIP        = errors.New("invalid ip address")
	errIncompleteResult = errors.New("lookup result has no city, country or location")
)
