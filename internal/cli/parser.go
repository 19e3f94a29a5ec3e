// Package cli handles command-line argument parsing for claude-sync.
package cli

import (
	"errors"
	"fmt"

	"github.com/rickgorman/claude-sync/internal/syncer"
)

// DefaultFilePath is used for both the remote and local file when the
// optional positional arguments are omitted.
const DefaultFilePath = "CLAUDE.md"

// ErrShowHelp is returned when -h or --help appears anywhere in the
// arguments. It short-circuits all other parsing.
var ErrShowHelp = errors.New("help requested")

// ErrShowVersion is returned when --version appears in the arguments.
var ErrShowVersion = errors.New("version requested")

// ErrUsage marks an invalid invocation: too few or too many positional
// arguments.
var ErrUsage = errors.New("usage error")

// Parse converts command-line arguments into a sync request.
//
// Invocation:
//
//	claude-sync <repo_owner> <repo_name> <branch> [remote_file_path] [local_file_path]
func Parse(osArgs []string) (*syncer.Request, error) {
	var positionals []string

	for _, arg := range osArgs[1:] {
		switch arg {
		case "-h", "--help":
			return nil, ErrShowHelp
		case "--version":
			return nil, ErrShowVersion
		default:
			positionals = append(positionals, arg)
		}
	}

	if len(positionals) < 3 {
		return nil, fmt.Errorf("%w: expected <repo_owner> <repo_name> <branch>, got %d argument(s)",
			ErrUsage, len(positionals))
	}
	if len(positionals) > 5 {
		return nil, fmt.Errorf("%w: too many arguments", ErrUsage)
	}

	req := &syncer.Request{
		Owner:      positionals[0],
		Repo:       positionals[1],
		Branch:     positionals[2],
		RemotePath: DefaultFilePath,
		LocalPath:  DefaultFilePath,
	}
	if len(positionals) >= 4 {
		req.RemotePath = positionals[3]
	}
	if len(positionals) == 5 {
		req.LocalPath = positionals[4]
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return req, nil
}

// Usage returns the one-screen usage text printed on invalid
// invocations.
func Usage() string {
	return `Usage:
    claude-sync <repo_owner> <repo_name> <branch> [remote_file_path] [local_file_path]
    claude-sync -h | --help

Defaults:
    remote_file_path  CLAUDE.md
    local_file_path   CLAUDE.md
`
}

// Help returns the full help text for -h/--help.
func Help() string {
	return `claude-sync - sync a guidance file from a GitHub repository

USAGE:
    claude-sync <repo_owner> <repo_name> <branch> [remote_file_path] [local_file_path]

ARGUMENTS:
    repo_owner          GitHub account or organization owning the repository
    repo_name           Repository name
    branch              Branch to fetch the file from
    remote_file_path    Path of the file in the repository (default: CLAUDE.md)
    local_file_path     Destination path in the working tree (default: CLAUDE.md)

OPTIONS:
    -h, --help          Show this help message
    --version           Show version information

BEHAVIOR:
    Any existing local file is copied to <local_file_path>.backup.<timestamp>
    before the download. On download failure the backup is restored. After a
    successful download a diff against the backup is shown and you are asked
    whether to keep the backup (default: delete).

EXAMPLES:
    # Fetch CLAUDE.md from the main branch
    claude-sync acme tmpl main

    # Fetch a nested file to a custom local path
    claude-sync acme tmpl main docs/CLAUDE.md CLAUDE.md

ENVIRONMENT VARIABLES:
    GH_HOST                 GitHub host for enterprise setups
    CLAUDE_SYNC_MARKER      Substring the verification step expects in the file
    CLAUDE_SYNC_ASSUME_NO   Set to 1 to answer prompts with their default
`
}
