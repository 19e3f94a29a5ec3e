package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rewriteTransport redirects every request to a local test server while
// keeping path, query, and headers intact.
type rewriteTransport struct {
	base http.RoundTripper
	url  *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = t.url.Scheme
	req.URL.Host = t.url.Host
	return t.base.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *ContentsClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	client, err := NewContentsClient(ContentsOptions{
		Host:      "github.com",
		Token:     "ghp_test",
		Transport: rewriteTransport{base: http.DefaultTransport, url: serverURL},
	})
	require.NoError(t, err)
	return client
}

func TestFetch(t *testing.T) {
	t.Run("returns raw body verbatim", func(t *testing.T) {
		body := "# CLAUDE.md\n\nGuidance for agents.\n"
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/acme/tmpl/contents/CLAUDE.md", r.URL.Path)
			assert.Equal(t, "main", r.URL.Query().Get("ref"))
			assert.Equal(t, "application/vnd.github.v3.raw", r.Header.Get("Accept"))
			assert.Equal(t, "token ghp_test", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(body))
		})

		got, err := client.Fetch(context.Background(), "acme", "tmpl", "CLAUDE.md", "main")
		require.NoError(t, err)
		assert.Equal(t, []byte(body), got)
	})

	t.Run("one-byte body survives", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("x"))
		})

		got, err := client.Fetch(context.Background(), "acme", "tmpl", "CLAUDE.md", "main")
		require.NoError(t, err)
		assert.Equal(t, []byte("x"), got)
	})

	t.Run("nested remote path keeps slashes", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/acme/tmpl/contents/docs/CLAUDE.md", r.URL.Path)
			_, _ = w.Write([]byte("nested"))
		})

		got, err := client.Fetch(context.Background(), "acme", "tmpl", "docs/CLAUDE.md", "main")
		require.NoError(t, err)
		assert.Equal(t, []byte("nested"), got)
	})

	t.Run("non-2xx fails fast without reading the body as content", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		})

		_, err := client.Fetch(context.Background(), "acme", "tmpl", "CLAUDE.md", "missing-branch")
		require.Error(t, err)

		var httpErr *api.HTTPError
		require.True(t, errors.As(err, &httpErr), "expected *api.HTTPError, got %T", err)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	})

	t.Run("empty 2xx body is returned as-is for the caller to reject", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		got, err := client.Fetch(context.Background(), "acme", "tmpl", "CLAUDE.md", "main")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEscapePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain file", in: "CLAUDE.md", want: "CLAUDE.md"},
		{name: "nested path", in: "docs/CLAUDE.md", want: "docs/CLAUDE.md"},
		{name: "segment with spaces", in: "my docs/CLAUDE.md", want: "my%20docs/CLAUDE.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapePath(tt.in); got != tt.want {
				t.Errorf("escapePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
