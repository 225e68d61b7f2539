package providers

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/9seconds/threatmap/threatmap"
	"github.com/spf13/afero"
)

var (
	maxmindChecksumRegexp = regexp.MustCompile(`(?i)^[a-f0-9]{64}$`)
)

const (
	maxmindLiteArchiveName = "archive.tar.gz"
)

type maxmindLiteProvider struct {
	licenseKey string
	httpClient threatmap.HTTPClient
}

func (m *maxmindLiteProvider) Name() string {
	return NameMaxmindLite
}

func (m *maxmindLiteProvider) Download(ctx context.Context, fs afero.Fs, rootDir string) error {
	expectedChecksum, err := m.downloadChecksum(ctx)
	if err != nil {
		return fmt.Errorf("cannot download a checksum: %w", err)
	}

	actualChecksum, err := m.downloadArchive(ctx, fs, rootDir)
	if err != nil {
		return fmt.Errorf("cannot download an archive: %w", err)
	}

	if !strings.EqualFold(expectedChecksum, actualChecksum) {
		return fmt.Errorf("checksum mismatch. expected=%s, actual=%s",
			expectedChecksum,
			actualChecksum)
	}

	if err := m.extractArchive(fs, rootDir); err != nil {
		return fmt.Errorf("cannot extract archive: %w", err)
	}

	return nil
}

func (m *maxmindLiteProvider) downloadChecksum(ctx context.Context) (string, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, m.buildURL("tar.gz.sha256"), nil)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot fetch checksum page: %w", err)
	}

	defer flushResponse(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("cannot read body of the response: %w", err)
	}

	pos := bytes.IndexAny(data, " \t")
	if pos == -1 {
		return "", fmt.Errorf("incorrect response format: %q", data)
	}

	if !maxmindChecksumRegexp.Match(data[:pos]) {
		return "", fmt.Errorf("incorrect checksum format: %q", data[:pos])
	}

	return string(data[:pos]), nil
}

func (m *maxmindLiteProvider) downloadArchive(ctx context.Context, fs afero.Fs, rootDir string) (string, error) {
	tarFile, err := fs.Create(filepath.Join(rootDir, maxmindLiteArchiveName))
	if err != nil {
		return "", fmt.Errorf("cannot create an archive file: %w", err)
	}

	defer tarFile.Close()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, m.buildURL("tar.gz"), nil)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot download an archive: %w", err)
	}

	defer flushResponse(resp.Body)

	checksum, err := hashedCopyResponse(sha256.New, tarFile, resp.Body)
	if err != nil {
		return "", fmt.Errorf("cannot copy file into fs: %w", err)
	}

	return checksum, nil
}

func (m *maxmindLiteProvider) extractArchive(fs afero.Fs, rootDir string) error {
	archivePath := filepath.Join(rootDir, maxmindLiteArchiveName)

	archiveFile, err := fs.Open(archivePath)
	if err != nil {
		return fmt.Errorf("cannot open archive: %w", err)
	}

	defer func() {
		archiveFile.Close()
		fs.Remove(archivePath) // nolint: errcheck
	}()

	ungzipReader, err := gzip.NewReader(archiveFile)
	if err != nil {
		return fmt.Errorf("cannot create a gzip reader: %w", err)
	}

	tarReader := tar.NewReader(ungzipReader)

	for {
		header, err := tarReader.Next()

		switch {
		case err == io.EOF:
			return ErrNoFile
		case err != nil:
			return fmt.Errorf("cannot extract a header: %w", err)
		case header.Linkname != "", header.FileInfo().IsDir():
			continue
		case strings.ToUpper(filepath.Ext(header.Name)) == ".MMDB":
			return m.extractFile(fs, filepath.Join(rootDir, threatmap.DownloadedDatabaseName), tarReader)
		}
	}
}

func (m *maxmindLiteProvider) extractFile(fs afero.Fs, path string, src io.Reader) error {
	databaseFile, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create a file for a database: %w", err)
	}

	if err := copyResponse(databaseFile, src); err != nil {
		databaseFile.Close()

		return fmt.Errorf("cannot copy into a database file: %w", err)
	}

	return databaseFile.Close()
}

func (m *maxmindLiteProvider) buildURL(suffix string) string {
	queryValues := url.Values{}

	queryValues.Set("edition_id", "GeoLite2-City")
	queryValues.Set("suffix", suffix)
	queryValues.Set("license_key", m.licenseKey)

	urlStruct := url.URL{
		Scheme:   "https",
		Host:     "download.maxmind.com",
		Path:     "/app/geoip_download",
		RawQuery: queryValues.Encode(),
	}

	return urlStruct.String()
}

// NewMaxmindLite returns a new instance which downloads lite
// databases from MaxMind.
//
//   Identifier: maxmind_lite
//   Website: https://maxmind.com
//
// A GeoLite2 City database is fetched, checked against its published
// SHA-256 sum and extracted from a tarball.
func NewMaxmindLite(httpClient threatmap.HTTPClient, licenseKey string) (threatmap.Downloader, error) {
	if licenseKey == "" {
		return nil, ErrAuthTokenIsRequired
	}

	return &maxmindLiteProvider{
		httpClient: httpClient,
		licenseKey: licenseKey,
	}, nil
}
