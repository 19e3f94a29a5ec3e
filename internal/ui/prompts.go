package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// AskYesNo prompts the user with a yes/no question.
// Returns true for yes (y/yes), false otherwise. An empty answer
// returns the default.
func AskYesNo(prompt string, defaultYes bool) bool {
	if defaultYes {
		_, _ = fmt.Fprintf(Out, "  %s [Y/n] ", prompt)
	} else {
		_, _ = fmt.Fprintf(Out, "  %s [y/N] ", prompt)
	}

	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return defaultYes
	}

	return response == "y" || response == "yes"
}

// Prompter answers yes/no questions on stdin. When AssumeDefault is
// set (non-interactive runs), every question resolves to its default
// without blocking.
type Prompter struct {
	AssumeDefault bool
}

// Confirm asks a yes/no question and returns the answer.
func (p Prompter) Confirm(question string, defaultYes bool) bool {
	if p.AssumeDefault {
		return defaultYes
	}
	return AskYesNo(question, defaultYes)
}

// Reporter adapts the package-level output helpers to the narrow
// reporting interface the sync runner consumes.
type Reporter struct{}

func (Reporter) Info(format string, args ...interface{}) { Info(format, args...) }

func (Reporter) Warn(format string, args ...interface{}) { Warn(format, args...) }

func (Reporter) Success(format string, args ...interface{}) { Success(format, args...) }

func (Reporter) Print(text string) { Print(text) }
