package httpclient

import (
	"errors"
	"net/http"
	"time"
)

// MaxRedirects bounds the redirect chain followed for a single image request
const MaxRedirects = 10

// NewDefaultHTTPClient creates a simple HTTP client with a timeout
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= MaxRedirects {
				return errors.New("stopped after too many redirects")
			}
			return nil
		},
	}
}

// IsSuccess reports whether statusCode is in the 2xx range
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
