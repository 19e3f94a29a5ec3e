// Package git provides Git repository context detection.
package git

import (
	"os"
	"os/exec"
	"strings"
)

// Detector answers whether the working directory is inside a Git
// working tree. The zero value shells out to the git CLI.
type Detector struct{}

// IsRepository checks if the current directory is inside a git repository.
func (Detector) IsRepository() bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

// WorktreeRoot returns the root path of the current git worktree.
// Falls back to the current working directory if not in a git repository.
func WorktreeRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		// Not in a git repo, use current directory
		return os.Getwd()
	}

	return strings.TrimSpace(string(output)), nil
}
