package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-seal-doc"

// HTTPClient embeds *resty.Client so callers use its request builder
// directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures the client built by [NewHTTPClient].
type HTTPClientOption func(*resty.Client)

// WithBaseURL resolves relative request paths against url.
func WithBaseURL(url string) HTTPClientOption {
	return func(c *resty.Client) { c.SetBaseURL(url) }
}

// WithTimeout bounds every request, retries included.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// WithGatewayRetries retries up to count times, wait apart, when the
// response is 502, 503 or 504.
func WithGatewayRetries(count int, wait time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetRetryCount(count).
			SetRetryWaitTime(wait).
			SetRetryMaxWaitTime(4 * wait).
			AddRetryCondition(IsGatewayError)
	}
}

// NewHTTPClient returns an independent client that asks for JSON.
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("http://localhost:8080"))
//	resp, err := client.R().Get("/api/version")
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	for _, opt := range opts {
		opt(c)
	}
	return &HTTPClient{Client: c}
}

// IsGatewayError reports whether resp came from an unhealthy upstream.
func IsGatewayError(resp *resty.Response, _ error) bool {
	if resp == nil {
		return false
	}
	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
