package threatmap

import (
	"context"
	"net"
	"net/http"

	"github.com/spf13/afero"
)

// Provider resolves an IP address into a location.
type Provider interface {
	Name() string
	Lookup(net.IP) (ProviderLookupResult, error)
}

// OfflineProvider reads a database file. Lookup before Open is an error.
type OfflineProvider interface {
	Provider

	Open(fs afero.Fs, path string) error
	Shutdown()
}

// Downloader fetches a fresh database and puts it into rootDir as
// DownloadedDatabaseName.
type Downloader interface {
	Name() string
	Download(ctx context.Context, fs afero.Fs, rootDir string) error
}

// HTTPClient is satisfied by *http.Client and by NewHTTPClient.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Logger receives run-level events only. Skipped sources are never
// reported to it.
type Logger interface {
	SourcesLoaded(path string, count int)
	LocationsWritten(path string, count int)
	UpdateInfo(name string, msg string)
}
