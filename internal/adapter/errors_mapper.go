package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-quick-post/models"
	"github.com/go-resty/resty/v2"
)

// maxBodyInError bounds how much of a non-XRPC body is copied into an error.
const maxBodyInError = 256

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := describeErrorBody(resp)

	var status error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		status = ErrBadRequest
	case http.StatusUnauthorized:
		status = ErrUnauthorized
	case http.StatusForbidden:
		status = ErrForbidden
	case http.StatusNotFound:
		status = ErrNotFound
	case http.StatusTooManyRequests:
		status = ErrTooManyRequests
	case http.StatusInternalServerError:
		status = ErrInternalServerError
	case http.StatusBadGateway:
		status = ErrBadGateway
	default:
		return fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), detail)
	}

	return fmt.Errorf("%w: %w: %s", ErrTransport, status, detail)
}

// describeErrorBody prefers the XRPC "error: message" pair and falls back to
// the raw body, then to the status text.
func describeErrorBody(resp *resty.Response) string {
	body := resp.Body()

	var xrpcErr models.XRPCError
	if err := json.Unmarshal(body, &xrpcErr); err == nil && (xrpcErr.Error != "" || xrpcErr.Message != "") {
		return xrpcErr.String()
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return http.StatusText(resp.StatusCode())
	}
	if len(text) > maxBodyInError {
		text = truncateUTF8(text, maxBodyInError) + "..."
	}
	return text
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
