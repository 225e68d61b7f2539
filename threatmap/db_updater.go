package threatmap

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

const (
	// FsTempDirPrefix defines a prefix for temporary directories populated
	// during update of the offline database.
	//
	// It works in a following way:
	//    1. A temporary directory is created next to the database.
	//    2. Downloader puts DownloadedDatabaseName file there.
	//    3. This file is opened by a provider to make sure it is valid.
	//    4. If it differs from the current database, it is renamed over
	//       it. Temporary directory is removed in any case.
	FsTempDirPrefix = "tmp_"

	// DownloadedDatabaseName is a name of the file Downloader has to
	// create in a given directory.
	DownloadedDatabaseName = "database.mmdb"
)

// UpdateDatabase downloads a fresh database and installs it into
// dbPath. validator is used only to open and close downloaded file so a
// broken download never replaces a working database.
func UpdateDatabase(ctx context.Context,
	fs afero.Fs,
	downloader Downloader,
	validator OfflineProvider,
	dbPath string,
	logger Logger) error {
	rootDir := filepath.Dir(dbPath)

	if err := fs.MkdirAll(rootDir, 0755); err != nil {
		return fmt.Errorf("cannot create a database directory: %w", err)
	}

	tmpDir, err := afero.TempDir(fs, rootDir, FsTempDirPrefix)
	if err != nil {
		return fmt.Errorf("cannot create a temporary directory: %w", err)
	}

	defer fs.RemoveAll(tmpDir) // nolint: errcheck

	if err := downloader.Download(ctx, fs, tmpDir); err != nil {
		return fmt.Errorf("cannot download to tmp directory: %w", err)
	}

	downloadedPath := filepath.Join(tmpDir, DownloadedDatabaseName)

	if err := validator.Open(fs, downloadedPath); err != nil {
		return fmt.Errorf("downloaded database is invalid: %w", err)
	}

	validator.Shutdown()

	newChecksum, err := fileChecksum(fs, downloadedPath)
	if err != nil {
		return fmt.Errorf("cannot calculate a checksum of downloaded database: %w", err)
	}

	currentChecksum, err := fileChecksum(fs, dbPath)

	switch {
	case err == nil && currentChecksum == newChecksum:
		logger.UpdateInfo(downloader.Name(), "database is up to date")

		return nil
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("cannot calculate a checksum of current database: %w", err)
	}

	stat, err := fs.Stat(downloadedPath)
	if err != nil {
		return fmt.Errorf("cannot stat downloaded database: %w", err)
	}

	if err := fs.Rename(downloadedPath, dbPath); err != nil {
		return fmt.Errorf("cannot rename %s to %s: %w", downloadedPath, dbPath, err)
	}

	logger.UpdateInfo(downloader.Name(),
		fmt.Sprintf("database of %s has been installed to %s",
			humanize.Bytes(uint64(stat.Size())),
			dbPath))

	return nil
}

func fileChecksum(fs afero.Fs, path string) (string, error) {
	fp, err := fs.Open(path)
	if err != nil {
		return "", err
	}

	defer fp.Close()

	hasher := sha256.New()

	if _, err := io.Copy(hasher, fp); err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
