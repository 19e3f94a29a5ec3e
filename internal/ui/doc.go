// Package ui provides terminal output formatting for claude-sync.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Headers and footers with box-drawing characters
//   - Info, success, failure, and warning messages
//   - Dimmed text for secondary information
//   - A yes/no prompt with a non-interactive default
//
// All output goes to ui.Out (defaults to os.Stderr) so the downloaded
// file and diff can be piped from stdout without decoration mixed in.
//
// Example usage:
//
//	ui.Header()
//	ui.Info("Downloading CLAUDE.md...")
//	ui.Success("File updated")
//	ui.Footer()
//
//	// Interactive prompt
//	if ui.AskYesNo("Keep backup?", false) {
//	    // retained
//	}
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
