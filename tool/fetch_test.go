package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/text":
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("hello body"))
		case "/binary":
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Write([]byte{0x00, 0x01})
		case "/big":
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte(strings.Repeat("x", 100)))
		}
	}))
	defer srv.Close()

	fetch := NewWebFetch(nil)

	res := fetch.Invoke(context.Background(), map[string]any{"url": srv.URL + "/text"})
	require.True(t, res.OK)
	assert.Equal(t, "hello body", res.Content)

	res = fetch.Invoke(context.Background(), map[string]any{"url": srv.URL + "/binary"})
	assert.False(t, res.OK)
	assert.Contains(t, res.Content, "Blocked content-type")

	res = fetch.Invoke(context.Background(), map[string]any{
		"url":       srv.URL + "/big",
		"max_bytes": 10,
	})
	assert.False(t, res.OK)
	assert.Contains(t, res.Content, "Response too large")
}

func TestWebFetchDomainAllowlist(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	host, err := url.Parse(srv.URL)
	require.NoError(t, err)

	denied := NewWebFetch([]string{"example.com"})
	res := denied.Invoke(context.Background(), map[string]any{"url": srv.URL})
	assert.False(t, res.OK)
	assert.Contains(t, res.Content, "not allowed")

	allowed := NewWebFetch([]string{host.Hostname()})
	res = allowed.Invoke(context.Background(), map[string]any{"url": srv.URL})
	require.True(t, res.OK)
	assert.Equal(t, "ok", res.Content)
}

func TestWebFetchSchemes(t *testing.T) {
	fetch := NewWebFetch(nil)

	res := fetch.Invoke(context.Background(), map[string]any{"url": "ftp://example.com/file"})
	assert.False(t, res.OK)
	assert.Contains(t, res.Content, "http/https")

	res = fetch.Invoke(context.Background(), map[string]any{"url": "file:///etc/passwd"})
	assert.False(t, res.OK)
}
