package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"
)

// rawMediaType asks the contents endpoint for the file's bytes instead
// of JSON metadata with a base64 payload.
const rawMediaType = "application/vnd.github.v3.raw"

// ContentsClient fetches single files through the GitHub REST contents
// API, raw media variant. Non-2xx statuses surface as *api.HTTPError;
// the body of an error response is never interpreted as content.
type ContentsClient struct {
	rest *api.RESTClient
}

// ContentsOptions configures a ContentsClient.
type ContentsOptions struct {
	// Host is the GitHub host, e.g. "github.com".
	Host string
	// Token authenticates the request. Required.
	Token string
	// Transport overrides the HTTP transport. Tests use this to point
	// the client at a local server.
	Transport http.RoundTripper
}

// NewContentsClient builds a client with the raw Accept header and
// token auth baked into every request.
func NewContentsClient(opts ContentsOptions) (*ContentsClient, error) {
	rest, err := api.NewRESTClient(api.ClientOptions{
		Host:      opts.Host,
		AuthToken: opts.Token,
		Headers:   map[string]string{"Accept": rawMediaType},
		Transport: opts.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build REST client: %w", err)
	}
	return &ContentsClient{rest: rest}, nil
}

// Fetch downloads the file at path on ref and returns its raw bytes.
func (c *ContentsClient) Fetch(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/contents/%s?ref=%s",
		url.PathEscape(owner), url.PathEscape(repo), escapePath(path), url.QueryEscape(ref))

	resp, err := c.rest.RequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// escapePath escapes each segment of a repository file path while
// keeping the separating slashes intact.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
