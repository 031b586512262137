package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/mdlocal/internal/httpclient"
	"github.com/ternarybob/mdlocal/internal/interfaces"
)

const (
	// DefaultTimeout is the default per-request HTTP timeout
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent with every image request
	DefaultUserAgent = "mdlocal/1.0 (+https://github.com/ternarybob/mdlocal)"
)

// Fetcher performs a single GET per image and returns the full body
type Fetcher struct {
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
	userAgent  string
	maxSize    int64 // 0 means unlimited
}

// Compile-time assertion
var _ interfaces.ImageFetcher = (*Fetcher)(nil)

// FetcherOption configures the Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithRateLimit spaces consecutive requests to at most requestsPerSecond.
// Zero or negative disables limiting.
func WithRateLimit(requestsPerSecond float64) FetcherOption {
	return func(f *Fetcher) {
		if requestsPerSecond <= 0 {
			f.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) FetcherOption {
	return func(f *Fetcher) {
		if userAgent != "" {
			f.userAgent = userAgent
		}
	}
}

// WithMaxSize rejects bodies larger than maxBytes. Zero disables the cap.
func WithMaxSize(maxBytes int64) FetcherOption {
	return func(f *Fetcher) {
		f.maxSize = maxBytes
	}
}

// NewFetcher creates a new image fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		httpClient: httpclient.NewDefaultHTTPClient(DefaultTimeout),
		logger:     arbor.NewLogger(),
		limiter:    rate.NewLimiter(rate.Inf, 1),
		userAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch downloads imageURL. Any transport error, non-2xx status or oversize
// body is returned as a *DownloadError.
func (f *Fetcher) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, &DownloadError{URL: imageURL, Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, &DownloadError{URL: imageURL, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)

	f.logger.Debug().Str("url", imageURL).Msg("Fetching image")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &DownloadError{URL: imageURL, Err: err}
	}
	defer resp.Body.Close()

	if !httpclient.IsSuccess(resp.StatusCode) {
		return nil, &DownloadError{
			URL:        imageURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", resp.Status),
		}
	}

	var body io.Reader = resp.Body
	if f.maxSize > 0 {
		body = io.LimitReader(resp.Body, f.maxSize+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &DownloadError{URL: imageURL, Err: fmt.Errorf("read body: %w", err)}
	}

	if f.maxSize > 0 && int64(len(data)) > f.maxSize {
		return nil, &DownloadError{URL: imageURL, Err: fmt.Errorf("image exceeds %d bytes", f.maxSize)}
	}

	return data, nil
}
