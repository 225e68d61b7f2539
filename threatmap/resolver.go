package threatmap

import (
	"fmt"
	"net"
)

func resolveSource(provider Provider, source ThreatSource) (ProviderLookupResult, error) {
	ip := net.ParseIP(source.Source)
	if ip == nil {
		return ProviderLookupResult{}, errInvalidIP
	}

	result, err := provider.Lookup(ip)
	if err != nil {
		return ProviderLookupResult{}, fmt.Errorf("cannot lookup %s with %s: %w", ip, provider.Name(), err)
	}

	if !result.OK() {
		return ProviderLookupResult{}, errIncompleteResult
	}

	return result, nil
}
