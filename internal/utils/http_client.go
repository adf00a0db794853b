// Package utils provides general-purpose helper utilities used across the
// client: the HTTP client wrapper, JWT inspection and identifier generation.
package utils

import (
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-quick-post/internal/logger"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance. Every
// completed or failed request is logged at debug level with its method,
// path, status and duration. Headers and bodies are never logged, they carry
// passwords and bearer tokens.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New()

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("path", requestPath(resp.Request)).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("http request completed")
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		log.Debug().
			Err(err).
			Str("method", req.Method).
			Str("path", requestPath(req)).
			Msg("http request failed")
	})

	return &HTTPClient{Client: client}
}

func requestPath(req *resty.Request) string {
	if req.RawRequest != nil && req.RawRequest.URL != nil {
		return req.RawRequest.URL.Path
	}
	return req.URL
}
