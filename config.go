package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hjson/hjson-go/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"

	"github.com/9seconds/threatmap/providers"
	"github.com/9seconds/threatmap/threatmap"
)

const (
	DefaultCacheTTL    = time.Hour
	DefaultHTTPTimeout = 5 * time.Minute

	envLicenseKey = "MAXMIND_LICENSE_KEY"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	dur, err := time.ParseDuration(vv)
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	SourcesPath  string   `json:"sources_path"`
	DatabasePath string   `json:"database_path"`
	OutputPath   string   `json:"output_path"`
	Provider     string   `json:"provider"`
	CacheSize    uint     `json:"cache_size"`
	CacheTTL     duration `json:"cache_ttl"`
	LicenseKey   string   `json:"license_key"`
	HTTPTimeout  duration `json:"http_timeout"`
}

func (c config) GetSourcesPath() string {
	if c.SourcesPath != "" {
		return c.SourcesPath
	}

	return threatmap.DefaultSourcesPath
}

func (c config) GetDatabasePath() string {
	if c.DatabasePath != "" {
		return c.DatabasePath
	}

	return threatmap.DefaultDatabasePath
}

func (c config) GetOutputPath() string {
	if c.OutputPath != "" {
		return c.OutputPath
	}

	return threatmap.DefaultOutputPath
}

func (c config) GetProvider() string {
	if c.Provider != "" {
		return c.Provider
	}

	return providers.NameMaxmind
}

func (c config) GetCacheSize() uint {
	return c.CacheSize
}

func (c config) GetCacheTTL() time.Duration {
	if c.CacheTTL.Duration == 0 {
		return DefaultCacheTTL
	}

	return c.CacheTTL.Duration
}

func (c config) GetLicenseKey() string {
	if c.LicenseKey != "" {
		return c.LicenseKey
	}

	return os.Getenv(envLicenseKey)
}

func (c config) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout.Duration == 0 {
		return DefaultHTTPTimeout
	}

	return c.HTTPTimeout.Duration
}

// parseConfig reads a config from the given path. Empty path means
// defaults for everything.
func parseConfig(fs afero.Fs, path string) (*config, error) {
	conf := config{}

	if path == "" {
		return &conf, nil
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	rawMap := map[string]interface{}{}

	if err := hjson.Unmarshal(content, &rawMap); err != nil {
		return nil, fmt.Errorf("cannot parse hjson: %w", err)
	}

	rawBytes, _ := json.Marshal(rawMap)

	if err := json.Unmarshal(rawBytes, &conf); err != nil {
		return nil, fmt.Errorf("incorrect config: %w", err)
	}

	switch conf.GetProvider() {
	case providers.NameMaxmind, providers.NameGeoIP2:
	default:
		return nil, fmt.Errorf("unsupported provider name: %s", conf.GetProvider())
	}

	return &conf, nil
}
