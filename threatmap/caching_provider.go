package threatmap

import (
	"fmt"
	"net"
	"time"

	"github.com/dgraph-io/ristretto"
)

// CachingProvider puts a ristretto cache in front of a provider. Only
// successful lookups are cached: errors are returned as is every time.
type CachingProvider struct {
	Provider

	cache *ristretto.Cache
	ttl   time.Duration
}

func (c *CachingProvider) Lookup(ip net.IP) (ProviderLookupResult, error) {
	cacheKey := ip.String()

	value, ok := c.cache.Get(cacheKey)
	if ok {
		return value.(ProviderLookupResult), nil
	}

	result, err := c.Provider.Lookup(ip)
	if err != nil {
		return ProviderLookupResult{}, err
	}

	c.cache.SetWithTTL(cacheKey, result, 1, c.ttl)

	return result, nil
}

// Close stops background goroutines of the cache. Lookups after Close
// go directly to the wrapped provider.
func (c *CachingProvider) Close() {
	c.cache.Close()
}

// NewCachingProvider returns a provider which caches up to itemsCount
// results for ttl each. itemsCount has to be positive.
func NewCachingProvider(provider Provider, itemsCount uint, ttl time.Duration) (*CachingProvider, error) {
	cacheConfig := &ristretto.Config{
		MaxCost:     int64(itemsCount),
		NumCounters: 10 * int64(itemsCount),
		Metrics:     false,
		BufferItems: 64,
	}

	cache, err := ristretto.NewCache(cacheConfig)
	if err != nil {
		return nil, fmt.Errorf("cannot create a cache: %w", err)
	}

	return &CachingProvider{
		Provider: provider,
		cache:    cache,
		ttl:      ttl,
	}, nil
}
