// Package github wraps the two GitHub integrations claude-sync needs:
// authentication through the installed gh CLI, and single-file download
// through the REST contents API.
//
// Authentication (CLIAuth):
//
//   - Status: queries the gh CLI's stored auth state
//   - LoginWeb: runs the interactive browser-based login flow
//   - Token: exports a fresh bearer token (never read from config files)
//   - Identity: best-effort login-name lookup for the token
//
// Download (ContentsClient):
//
//   - GET repos/{owner}/{repo}/contents/{path}?ref={branch}
//   - Accept: application/vnd.github.v3.raw, so the response body is
//     the file's exact bytes rather than JSON-wrapped base64
//   - any non-2xx status is returned as an *api.HTTPError; the error
//     body is never treated as file content
//
// Example usage:
//
//	auth := &github.CLIAuth{Host: "github.com"}
//	if err := auth.Status(); err != nil {
//	    err = auth.LoginWeb(ctx)
//	}
//	token, _ := auth.Token()
//
//	client, _ := github.NewContentsClient(github.ContentsOptions{
//	    Host:  "github.com",
//	    Token: token,
//	})
//	content, err := client.Fetch(ctx, "acme", "tmpl", "CLAUDE.md", "main")
package github
