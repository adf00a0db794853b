package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-quick-post/internal/config"
	"github.com/MKhiriev/go-quick-post/internal/logger"
	"github.com/MKhiriev/go-quick-post/internal/utils"
	"github.com/MKhiriev/go-quick-post/models"
)

// XRPC method paths.
const (
	createSessionPath = "/xrpc/com.atproto.server.createSession"
	createRecordPath  = "/xrpc/com.atproto.repo.createRecord"
)

const userAgent = "go-quick-post"

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. Requests are never retried.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(logger)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateSession implements [ServerAdapter]. It POSTs the credentials to
// createSession and decodes the body by hand so that a malformed 2xx body is
// reported as [ErrInvalidResponse] rather than a transport error.
func (h *httpServerAdapter) CreateSession(ctx context.Context, req models.CreateSessionRequest) (models.CreateSessionResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(createSessionPath)
	if err != nil {
		return models.CreateSessionResponse{}, fmt.Errorf("%w: create session request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateSessionResponse{}, fmt.Errorf("create session: %w", err)
	}

	var out models.CreateSessionResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		h.logger.Debug().
			Str("func", "httpServerAdapter.CreateSession").
			Int("status", resp.StatusCode()).
			Int("body_len", len(resp.Body())).
			Msg("undecodable create session body")
		return models.CreateSessionResponse{}, fmt.Errorf("%w: decode create session body: %w", ErrInvalidResponse, err)
	}

	return out, nil
}

// CreateRecord implements [ServerAdapter]. It POSTs the record to
// createRecord with the bearer token attached.
func (h *httpServerAdapter) CreateRecord(ctx context.Context, token string, req models.CreateRecordRequest) error {
	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(createRecordPath)
	if err != nil {
		return fmt.Errorf("%w: create record request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("create record: %w", err)
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(strings.TrimSpace(token))
}
