package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/9seconds/threatmap/providers"
	"github.com/9seconds/threatmap/threatmap"
	"github.com/spf13/afero"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeOfflineProvider(conf *config) (threatmap.OfflineProvider, error) {
	switch conf.GetProvider() {
	case providers.NameMaxmind:
		return providers.NewMaxmind(), nil
	case providers.NameGeoIP2:
		return providers.NewGeoIP2(), nil
	}

	return nil, fmt.Errorf("unsupported provider name: %s", conf.GetProvider())
}

// makeProvider opens a database and returns a provider to use for
// lookups together with a function which releases the database.
func makeProvider(fs afero.Fs, conf *config) (threatmap.Provider, func(), error) {
	prov, err := makeOfflineProvider(conf)
	if err != nil {
		return nil, nil, err
	}

	if err := prov.Open(fs, conf.GetDatabasePath()); err != nil {
		return nil, nil, fmt.Errorf("cannot open database %s: %w", conf.GetDatabasePath(), err)
	}

	size := conf.GetCacheSize()
	if size == 0 {
		return prov, prov.Shutdown, nil
	}

	cached, err := threatmap.NewCachingProvider(prov, size, conf.GetCacheTTL())
	if err != nil {
		prov.Shutdown()

		return nil, nil, err
	}

	shutdown := func() {
		cached.Close()
		prov.Shutdown()
	}

	return cached, shutdown, nil
}

func makeHTTPClient(conf *config) threatmap.HTTPClient {
	httpClient := &http.Client{
		Timeout: conf.GetHTTPTimeout(),
	}

	return threatmap.NewHTTPClient(httpClient, "threatmap/"+version)
}
