package diff

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", name, err)
	}
	return path
}

func TestUnified(t *testing.T) {
	t.Run("identical files", func(t *testing.T) {
		a := writeTemp(t, "a.md", "same\ncontent\n")
		b := writeTemp(t, "b.md", "same\ncontent\n")

		text, identical, err := Renderer{}.Unified(a, b)
		if err != nil {
			t.Fatalf("Unified() error = %v", err)
		}
		if !identical {
			t.Error("identical = false, want true")
		}
		if text != "" {
			t.Errorf("diff text = %q, want empty", text)
		}
	})

	t.Run("changed line appears in diff", func(t *testing.T) {
		a := writeTemp(t, "a.md", "# Title\nOLD\n")
		b := writeTemp(t, "b.md", "# Title\nNEW\n")

		text, identical, err := Renderer{}.Unified(a, b)
		if err != nil {
			t.Fatalf("Unified() error = %v", err)
		}
		if identical {
			t.Error("identical = true, want false")
		}
		if !strings.Contains(text, "-OLD") {
			t.Errorf("diff should contain removed line, got:\n%s", text)
		}
		if !strings.Contains(text, "+NEW") {
			t.Errorf("diff should contain added line, got:\n%s", text)
		}
		if !strings.Contains(text, "--- "+a) || !strings.Contains(text, "+++ "+b) {
			t.Errorf("diff should carry file headers, got:\n%s", text)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		b := writeTemp(t, "b.md", "x\n")
		_, _, err := Renderer{}.Unified(filepath.Join(t.TempDir(), "gone"), b)
		if err == nil {
			t.Error("Unified() error = nil, want error for missing file")
		}
	})
}
