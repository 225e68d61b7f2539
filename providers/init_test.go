package providers_test

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/9seconds/threatmap/threatmap"
	"github.com/jarcoal/httpmock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

type HTTPMockMixin struct{}

func (suite *HTTPMockMixin) SetupSuite() {
	httpmock.Activate()
}

func (suite *HTTPMockMixin) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *HTTPMockMixin) TearDownTest() {
	httpmock.Reset()
}

type DownloaderTestSuite struct {
	suite.Suite

	http   threatmap.HTTPClient
	fs     afero.Fs
	tmpDir string
}

func (suite *DownloaderTestSuite) SetupTest() {
	suite.http = threatmap.NewHTTPClient(&http.Client{}, "test-agent")
	suite.fs = afero.NewMemMapFs()
	suite.tmpDir = "/download"

	suite.NoError(suite.fs.MkdirAll(suite.tmpDir, 0755))
}

type archiveFile struct {
	name    string
	content string
}

func makeArchive(files ...archiveFile) ([]byte, string) {
	buf := &bytes.Buffer{}
	gzipWriter := gzip.NewWriter(buf)
	tarWriter := tar.NewWriter(gzipWriter)

	for _, v := range files {
		tarWriter.WriteHeader(&tar.Header{ // nolint: errcheck
			Typeflag: tar.TypeReg,
			Name:     v.name,
			Mode:     0644,
			ModTime:  time.Now(),
			Size:     int64(len(v.content)),
		})
		tarWriter.Write([]byte(v.content)) // nolint: errcheck
	}

	tarWriter.Close()
	gzipWriter.Close()

	return buf.Bytes(), checksum(buf.Bytes())
}

func checksum(data []byte) string {
	hashed := sha256.Sum256(data)

	return hex.EncodeToString(hashed[:])
}
