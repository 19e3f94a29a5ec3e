// Package syncer implements the sync run: fetch one file from a branch
// of a GitHub repository, back up the local copy, write the download,
// show a diff, and offer cleanup of the backup.
//
// The Runner is a linear sequence of steps, each of which aborts the
// run on failure:
//
//  1. dependency check (gh, git, curl on PATH)
//  2. repository-context check (cwd inside a git working tree)
//  3. authentication (stored gh credentials, or an interactive web login)
//  4. backup of any existing local file to a timestamped sibling
//  5. authenticated raw-contents download, fail-fast on non-2xx, with
//     restore of the backup when the download or the non-empty
//     post-condition fails
//
// The remaining steps are advisory and never fail the run: marker
// verification with a line count and content digest, a unified diff
// against the backup, and an interactive keep/delete prompt for the
// backup (default: delete).
//
// External integrations enter through narrow interfaces (AuthProvider,
// RepoDetector, DepChecker, Fetcher, DiffRenderer, Prompter, Reporter)
// so tests can run the full sequence against fakes and a temp
// directory.
package syncer
