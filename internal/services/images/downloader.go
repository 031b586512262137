package images

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mdlocal/internal/interfaces"
	"github.com/ternarybob/mdlocal/internal/models"
)

// Downloader names, fetches and persists images next to a document
type Downloader struct {
	fetcher  interfaces.ImageFetcher
	namer    *Namer
	assetDir string
	logger   arbor.ILogger
}

// Compile-time assertion
var _ interfaces.ImageDownloader = (*Downloader)(nil)

// NewDownloader creates a downloader that stores files under <documentDir>/<assetDir>
func NewDownloader(fetcher interfaces.ImageFetcher, assetDir string, logger arbor.ILogger) *Downloader {
	if assetDir == "" {
		assetDir = DefaultAssetDir
	}
	return &Downloader{
		fetcher:  fetcher,
		namer:    NewNamer(),
		assetDir: assetDir,
		logger:   logger,
	}
}

// Download saves imageURL into the asset directory beside the document.
// On failure the returned StoredImage carries the error text and err is a *DownloadError.
func (d *Downloader) Download(ctx context.Context, imageURL string, documentDir string) (models.StoredImage, error) {
	result := models.StoredImage{
		OriginalURL: imageURL,
	}

	dir := AssetDir(documentDir, d.assetDir)
	fullPath := filepath.Join(dir, d.namer.FileName(imageURL))

	data, err := d.fetcher.Fetch(ctx, imageURL)
	if err != nil {
		return d.fail(result, asDownloadError(imageURL, err))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return d.fail(result, &DownloadError{URL: imageURL, Err: fmt.Errorf("create dir: %w", err)})
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return d.fail(result, &DownloadError{URL: imageURL, Err: fmt.Errorf("write: %w", err)})
	}

	localPath, err := RelativePath(documentDir, fullPath)
	if err != nil {
		return d.fail(result, &DownloadError{URL: imageURL, Err: err})
	}

	result.LocalPath = localPath
	result.FullPath = fullPath
	result.Size = int64(len(data))

	d.logger.Debug().
		Str("url", imageURL).
		Str("path", localPath).
		Int64("size", result.Size).
		Msg("Image downloaded and stored")

	return result, nil
}

func (d *Downloader) fail(result models.StoredImage, err *DownloadError) (models.StoredImage, error) {
	result.Error = err.Error()
	return result, err
}

func asDownloadError(imageURL string, err error) *DownloadError {
	var de *DownloadError
	if errors.As(err, &de) {
		return de
	}
	return &DownloadError{URL: imageURL, Err: err}
}
