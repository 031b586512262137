package interfaces

import (
	"context"

	"github.com/ternarybob/mdlocal/internal/models"
)

// ImageFetcher retrieves the raw bytes behind an http(s) URL
type ImageFetcher interface {
	Fetch(ctx context.Context, imageURL string) ([]byte, error)
}

// ImageDownloader fetches a remote image and stores it next to a document
type ImageDownloader interface {
	// Download saves imageURL under the asset directory of documentDir and returns
	// the stored image with its document-relative LocalPath
	Download(ctx context.Context, imageURL string, documentDir string) (models.StoredImage, error)
}
