package syncer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rickgorman/claude-sync/internal/backup"
	"github.com/rickgorman/claude-sync/pkg/hash"
)

// Request describes one sync run. Immutable once parsed from the
// invocation arguments.
type Request struct {
	Owner      string
	Repo       string
	Branch     string
	RemotePath string
	LocalPath  string
}

// Validate enforces the request invariant: owner, repo, and branch are
// non-empty.
func (r Request) Validate() error {
	if r.Owner == "" || r.Repo == "" || r.Branch == "" {
		return fmt.Errorf("%w: owner, repo, and branch are required", ErrInvalidRequest)
	}
	return nil
}

// AuthProvider manages GitHub credentials through an external CLI.
type AuthProvider interface {
	// Status reports whether stored credentials exist.
	Status() error
	// LoginWeb runs the interactive browser-based login flow.
	LoginWeb(ctx context.Context) error
	// Token exports a fresh bearer token.
	Token() (string, error)
	// Identity resolves the authenticated login name (best-effort).
	Identity(ctx context.Context) (string, error)
}

// RepoDetector answers whether the working directory is inside a
// version-controlled working tree.
type RepoDetector interface {
	IsRepository() bool
}

// DepChecker confirms required external executables are on PATH.
type DepChecker interface {
	Check() error
}

// Fetcher downloads a single file's raw bytes.
type Fetcher interface {
	Fetch(ctx context.Context, owner, repo, path, ref string) ([]byte, error)
}

// DiffRenderer produces a unified diff between two files. The bool is
// true when the files are identical.
type DiffRenderer interface {
	Unified(oldPath, newPath string) (string, bool, error)
}

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(question string, defaultYes bool) bool
}

// Reporter receives the runner's progress output.
type Reporter interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Success(format string, args ...interface{})
	Print(text string)
}

// Runner executes the sync sequence: dependency and repository checks,
// authentication, backup, download with restore-on-failure, advisory
// verification, diff display, and interactive backup cleanup.
type Runner struct {
	Auth   AuthProvider
	Repo   RepoDetector
	Deps   DepChecker
	Diff   DiffRenderer
	Prompt Prompter
	Out    Reporter

	// NewFetcher builds the download client once a token is available.
	// The token is exported only after authentication succeeds, so the
	// client cannot be constructed up front.
	NewFetcher func(token string) (Fetcher, error)

	// Marker is the substring the advisory verification looks for in
	// the downloaded file. Empty means the base name of the remote path.
	Marker string
}

// Run performs one sync. On a fatal error the local filesystem is left
// as it was before the run (modulo a consumed-on-restore backup); on
// success the local path holds the downloaded bytes.
func (r *Runner) Run(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := r.Deps.Check(); err != nil {
		return fmt.Errorf("%w: %v", ErrDependencyMissing, err)
	}

	if !r.Repo.IsRepository() {
		return fmt.Errorf("%w: run claude-sync from inside a git working tree", ErrNotARepository)
	}

	if err := r.authenticate(ctx); err != nil {
		return err
	}

	rec, err := r.backupExisting(req.LocalPath)
	if err != nil {
		return err
	}

	if _, err := r.download(ctx, req, rec); err != nil {
		return err
	}

	r.verify(req)

	if rec != nil {
		r.showDiff(rec.Path, req.LocalPath)
		r.cleanup(rec)
	}

	r.Out.Success("Updated %s", req.LocalPath)
	r.Out.Info("Review the changes and commit when ready")
	return nil
}

func (r *Runner) authenticate(ctx context.Context) error {
	if err := r.Auth.Status(); err != nil {
		r.Out.Info("Not authenticated with GitHub, starting web login")
		if err := r.Auth.LoginWeb(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrAuth, err)
		}
	}

	identity, err := r.Auth.Identity(ctx)
	if err != nil || identity == "" {
		identity = "unknown"
	}
	r.Out.Info("Authenticated as %s", identity)
	return nil
}

func (r *Runner) backupExisting(localPath string) (*backup.Record, error) {
	if !backup.Exists(localPath) {
		r.Out.Warn("No existing file at %s, skipping backup", localPath)
		return nil, nil
	}

	rec, err := backup.Create(localPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackup, err)
	}
	r.Out.Info("Backed up %s to %s", localPath, rec.Path)
	return rec, nil
}

func (r *Runner) download(ctx context.Context, req Request, rec *backup.Record) ([]byte, error) {
	token, err := r.Auth.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	fetcher, err := r.NewFetcher(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	r.Out.Info("Downloading %s from %s/%s@%s", req.RemotePath, req.Owner, req.Repo, req.Branch)

	content, err := fetcher.Fetch(ctx, req.Owner, req.Repo, req.RemotePath, req.Branch)
	if err != nil {
		return nil, r.failDownload(rec, fmt.Errorf("%w: %s: %v", ErrDownload, req.RemotePath, err))
	}

	if err := os.WriteFile(req.LocalPath, content, 0o644); err != nil {
		return nil, r.failDownload(rec, fmt.Errorf("%w: writing %s: %v", ErrDownload, req.LocalPath, err))
	}

	// The GET can report success with nothing in it; an empty file is
	// never a valid outcome.
	info, err := os.Stat(req.LocalPath)
	if err != nil || info.Size() == 0 {
		return nil, r.failDownload(rec, fmt.Errorf("%w: %s", ErrEmptyDownload, req.RemotePath))
	}

	return content, nil
}

// failDownload restores the pre-run content (if a backup exists) and
// passes the download error through.
func (r *Runner) failDownload(rec *backup.Record, cause error) error {
	if rec == nil {
		return cause
	}
	if err := rec.Restore(); err != nil {
		r.Out.Warn("%v", err)
		return cause
	}
	r.Out.Warn("Restored %s from backup", rec.Source)
	return cause
}

// verify is advisory only: a missing marker produces a warning, never
// a failure.
func (r *Runner) verify(req Request) {
	fresh, err := os.ReadFile(req.LocalPath)
	if err != nil {
		r.Out.Warn("Could not re-read %s for verification: %v", req.LocalPath, err)
		return
	}

	marker := r.Marker
	if marker == "" {
		marker = filepath.Base(req.RemotePath)
	}
	if !strings.Contains(string(fresh), marker) {
		r.Out.Warn("Downloaded file does not mention %q and may not be the expected document", marker)
	}

	r.Out.Info("%s: %d lines, digest %s", req.LocalPath, lineCount(fresh), hash.ContentDigest(fresh))
}

func (r *Runner) showDiff(oldPath, newPath string) {
	text, identical, err := r.Diff.Unified(oldPath, newPath)
	switch {
	case err != nil:
		r.Out.Info("Diff unavailable")
	case identical:
		r.Out.Info("No changes from previous version")
	default:
		r.Out.Info("Changes from previous version:")
		r.Out.Print(text)
	}
}

func (r *Runner) cleanup(rec *backup.Record) {
	question := fmt.Sprintf("Keep backup file %s?", rec.Path)
	if r.Prompt.Confirm(question, false) {
		r.Out.Info("Backup retained at %s", rec.Path)
		return
	}
	if err := rec.Remove(); err != nil {
		r.Out.Warn("%v", err)
	}
}

func lineCount(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	n := strings.Count(string(content), "\n")
	if content[len(content)-1] != '\n' {
		n++
	}
	return n
}
