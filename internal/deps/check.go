// Package deps verifies that the external tools claude-sync shells out
// to are resolvable on the search path.
package deps

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cli/safeexec"
)

// Required lists the executables a sync run depends on: the GitHub CLI
// for auth, git for repository detection, and curl for the gh CLI's own
// fallback transfers.
var Required = []string{"gh", "git", "curl"}

// Checker resolves executables on PATH. LookPath is injectable for tests;
// the default uses safeexec, which refuses the cwd-relative lookups that
// plain exec.LookPath allows on Windows.
type Checker struct {
	LookPath func(string) (string, error)
}

// NewChecker returns a Checker backed by safeexec.
func NewChecker() *Checker {
	return &Checker{LookPath: safeexec.LookPath}
}

// Check confirms every required executable resolves. The returned error
// names all missing tools and includes a per-OS install hint.
func (c *Checker) Check() error {
	var missing []string
	for _, tool := range Required {
		if _, err := c.LookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return fmt.Errorf("missing required dependencies: %s\n%s",
		strings.Join(missing, " "), installHint(missing))
}

// installHint suggests an install command for the missing tools.
func installHint(missing []string) string {
	if runtime.GOOS == "darwin" {
		return "Install with: brew install " + strings.Join(missing, " ")
	}
	return "Install with: sudo apt-get install " + strings.Join(missing, " ")
}
