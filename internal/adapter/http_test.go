// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-quick-post/internal/config"
	"github.com/MKhiriev/go-quick-post/internal/logger"
	"github.com/MKhiriev/go-quick-post/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── CreateSession ────────────────────────────────────────────────────────────

func TestCreateSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/xrpc/com.atproto.server.createSession", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.CreateSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice.bsky.social", req.Identifier)
		assert.Equal(t, "pw", req.Password)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"accessJwt":  "tok-123",
			"refreshJwt": "ref-456",
			"did":        "did:plc:abc",
			"handle":     "alice.bsky.social",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.CreateSession(context.Background(), models.CreateSessionRequest{
		Identifier: "alice.bsky.social",
		Password:   "pw",
	})

	require.NoError(t, err)
	session, ok := resp.Session()
	require.True(t, ok)
	assert.Equal(t, "tok-123", session.AccessJwt)
	assert.Equal(t, "did:plc:abc", session.DID)
}

func TestCreateSession_MissingFieldIsNotAnAdapterError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"did": "did:plc:abc"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.CreateSession(context.Background(), models.CreateSessionRequest{Identifier: "a", Password: "b"})

	require.NoError(t, err)
	_, ok := resp.Session()
	assert.False(t, ok)
}

func TestCreateSession_UndecodableBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>ok</html>"},
		{"array", `["tok","did"]`},
		{"wrong field type", `{"accessJwt": 42, "did": "did:plc:abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.CreateSession(context.Background(), models.CreateSessionRequest{Identifier: "a", Password: "b"})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidResponse)
			assert.NotErrorIs(t, err, ErrTransport)
		})
	}
}

func TestCreateSession_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.XRPCError{
			Error:   "AuthenticationRequired",
			Message: "Invalid identifier or password",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateSession(context.Background(), models.CreateSessionRequest{Identifier: "a", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "AuthenticationRequired: Invalid identifier or password")
}

func TestCreateSession_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrTransport},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("upstream says no"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.CreateSession(context.Background(), models.CreateSessionRequest{Identifier: "a", Password: "b"})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTransport)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "upstream says no")
		})
	}
}

func TestCreateSession_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.CreateSession(context.Background(), models.CreateSessionRequest{Identifier: "a", Password: "b"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestCreateSession_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = a.CreateSession(context.Background(), models.CreateSessionRequest{Identifier: "a", Password: "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestCreateSession_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateSession(ctx, models.CreateSessionRequest{Identifier: "a", Password: "b"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── CreateRecord ─────────────────────────────────────────────────────────────

func TestCreateRecord_Success(t *testing.T) {
	post := models.NewPost("hello", time.Date(2026, 10, 15, 9, 30, 45, 123_000_000, time.UTC))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/xrpc/com.atproto.repo.createRecord", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "app.bsky.feed.post", body["collection"])
		assert.Equal(t, "did:plc:abc", body["repo"])

		record, ok := body["record"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "app.bsky.feed.post", record["$type"])
		assert.Equal(t, "hello", record["text"])
		assert.Equal(t, "2026-10-15T09:30:45.123Z", record["createdAt"])

		// body is deliberately not a createRecord response
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.CreateRecord(context.Background(), "tok-123", models.NewCreatePostRequest("did:plc:abc", post))

	require.NoError(t, err)
}

func TestCreateRecord_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.XRPCError{Error: "ExpiredToken", Message: "Token has expired"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.CreateRecord(context.Background(), "old", models.NewCreatePostRequest("did:plc:abc", models.NewPost("x", time.Now())))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "ExpiredToken")
}

func TestCreateRecord_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.CreateRecord(context.Background(), "tok", models.NewCreatePostRequest("did:plc:abc", models.NewPost("x", time.Now())))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "Internal Server Error")
}

// длинное тело ошибки обрезается по границе руны
func TestCreateRecord_LongMultiByteErrorBody(t *testing.T) {
	body := "x" + strings.Repeat("я", 200)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.CreateRecord(context.Background(), "tok", models.NewCreatePostRequest("did:plc:abc", models.NewPost("x", time.Now())))

	require.Error(t, err)
	assert.True(t, utf8.ValidString(err.Error()), "error message is not valid UTF-8: %q", err.Error())
	assert.Contains(t, err.Error(), "x"+strings.Repeat("я", 127)+"...")
}

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "abc", 5, "abc"},
		{"ascii cut", "abcdef", 3, "abc"},
		{"inside two-byte rune", "aяb", 2, "a"},
		{"after two-byte rune", "aяb", 3, "aя"},
		{"inside four-byte rune", "😀x", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateUTF8(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid https", "https://bsky.social", "https://bsky.social", false},
		{"valid http", "http://localhost:2583", "http://localhost:2583", false},
		{"no scheme", "bsky.social", "https://bsky.social", false},
		{"trailing slash", "https://bsky.social/", "https://bsky.social", false},
		{"surrounding spaces", "  https://bsky.social  ", "https://bsky.social", false},
		{"empty", "", "", true},
		{"no host", "https://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: " ", RequestTimeout: time.Second}, logger.Nop())
	require.Error(t, err)
}
