package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/cli/go-gh/v2"
	"github.com/google/go-github/v82/github"
)

// CLIAuth drives authentication through the installed gh CLI. Tokens
// are exported fresh from the CLI for every run; nothing is read from
// its persisted config files.
type CLIAuth struct {
	// Host is the GitHub host, e.g. "github.com" or an enterprise host.
	Host string
}

// Status reports whether the gh CLI has stored credentials for the host.
func (a *CLIAuth) Status() error {
	_, stderr, err := gh.Exec("auth", "status", "--hostname", a.host())
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("gh auth status failed: %w", err)
		}
		return fmt.Errorf("gh auth status failed: %s", msg)
	}
	return nil
}

// LoginWeb runs the interactive browser-based login flow. The gh CLI
// owns the terminal for the duration of the flow.
func (a *CLIAuth) LoginWeb(ctx context.Context) error {
	if err := gh.ExecInteractive(ctx, "auth", "login", "--web", "--hostname", a.host()); err != nil {
		return fmt.Errorf("gh auth login failed: %w", err)
	}
	return nil
}

// Token exports a fresh bearer token from the gh CLI.
func (a *CLIAuth) Token() (string, error) {
	stdout, stderr, err := gh.Exec("auth", "token", "--hostname", a.host())
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("gh auth token failed: %w", err)
		}
		return "", fmt.Errorf("gh auth token failed: %s", msg)
	}

	token := strings.TrimSpace(stdout.String())
	if token == "" {
		return "", fmt.Errorf("gh auth token returned an empty token")
	}
	return token, nil
}

// Identity resolves the authenticated user's login name. Best-effort:
// callers treat any error as "unknown" and continue.
func (a *CLIAuth) Identity(ctx context.Context) (string, error) {
	token, err := a.Token()
	if err != nil {
		return "", err
	}

	client := github.NewClient(nil).WithAuthToken(token)
	if a.host() != "github.com" {
		baseURL := fmt.Sprintf("https://%s/api/v3/", a.host())
		uploadURL := fmt.Sprintf("https://%s/api/uploads/", a.host())
		client, err = client.WithEnterpriseURLs(baseURL, uploadURL)
		if err != nil {
			return "", fmt.Errorf("failed to configure enterprise client: %w", err)
		}
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	return user.GetLogin(), nil
}

func (a *CLIAuth) host() string {
	if a.Host == "" {
		return "github.com"
	}
	return a.Host
}
