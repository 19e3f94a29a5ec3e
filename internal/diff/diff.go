// Package diff renders line-based unified diffs between the backup and
// the freshly downloaded file.
package diff

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
)

// Renderer produces unified diffs from files on disk. The zero value
// uses three lines of context, matching diff -u.
type Renderer struct {
	// Context is the number of unchanged lines shown around each hunk.
	// Zero means the default of 3.
	Context int
}

// Unified returns a unified diff between oldPath and newPath. The
// second return value is true when the files are byte-identical, in
// which case the diff text is empty.
func (r Renderer) Unified(oldPath, newPath string) (string, bool, error) {
	oldBytes, err := os.ReadFile(oldPath)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", oldPath, err)
	}
	newBytes, err := os.ReadFile(newPath)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", newPath, err)
	}

	if bytes.Equal(oldBytes, newBytes) {
		return "", true, nil
	}

	context := r.Context
	if context == 0 {
		context = 3
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(oldBytes)),
		B:        difflib.SplitLines(string(newBytes)),
		FromFile: oldPath,
		ToFile:   newPath,
		Context:  context,
	}

	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", false, fmt.Errorf("failed to compute diff: %w", err)
	}
	return text, false, nil
}
