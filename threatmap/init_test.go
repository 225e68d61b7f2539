package threatmap_test

import (
	"context"
	"net"

	"github.com/9seconds/threatmap/threatmap"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) Lookup(ip net.IP) (threatmap.ProviderLookupResult, error) {
	args := m.Called(ip)

	return args.Get(0).(threatmap.ProviderLookupResult), args.Error(1)
}

func (m *ProviderMock) Name() string {
	return m.Called().String(0)
}

type OfflineProviderMock struct {
	ProviderMock
}

func (m *OfflineProviderMock) Open(fs afero.Fs, path string) error {
	return m.Called(fs, path).Error(0)
}

func (m *OfflineProviderMock) Shutdown() {
	m.Called()
}

type DownloaderMock struct {
	mock.Mock
}

func (m *DownloaderMock) Name() string {
	return m.Called().String(0)
}

func (m *DownloaderMock) Download(ctx context.Context, fs afero.Fs, rootDir string) error {
	return m.Called(ctx, fs, rootDir).Error(0)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) SourcesLoaded(path string, count int) {
	m.Called(path, count)
}

func (m *LoggerMock) LocationsWritten(path string, count int) {
	m.Called(path, count)
}

func (m *LoggerMock) UpdateInfo(name, msg string) {
	m.Called(name, msg)
}

func ipArg(addr string) interface{} {
	expected := net.ParseIP(addr)

	return mock.MatchedBy(func(ip net.IP) bool {
		return expected.Equal(ip)
	})
}

func located(city, country string, lat, lon float64) threatmap.ProviderLookupResult {
	return threatmap.ProviderLookupResult{
		City:      &city,
		Country:   &country,
		Latitude:  &lat,
		Longitude: &lon,
	}
}
