package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/rickgorman/claude-sync/internal/cli"
	"github.com/rickgorman/claude-sync/internal/config"
	"github.com/rickgorman/claude-sync/internal/deps"
	"github.com/rickgorman/claude-sync/internal/diff"
	"github.com/rickgorman/claude-sync/internal/git"
	"github.com/rickgorman/claude-sync/internal/github"
	"github.com/rickgorman/claude-sync/internal/syncer"
	"github.com/rickgorman/claude-sync/internal/ui"
)

const version = "1.0.0"

func main() {
	req, err := cli.Parse(os.Args)
	if err != nil {
		if errors.Is(err, cli.ErrShowHelp) {
			fmt.Print(cli.Help())
			os.Exit(0)
		}
		if errors.Is(err, cli.ErrShowVersion) {
			fmt.Printf("claude-sync %s\n", version)
			os.Exit(0)
		}
		fmt.Print(cli.Usage())
		os.Exit(1)
	}

	cfg := config.Load()
	installInterruptHandler()

	ui.Header()

	runner := &syncer.Runner{
		Auth:   &github.CLIAuth{Host: cfg.Host},
		Repo:   git.Detector{},
		Deps:   deps.NewChecker(),
		Diff:   diff.Renderer{},
		Prompt: ui.Prompter{AssumeDefault: cfg.AssumeNo || !isatty.IsTerminal(os.Stdin.Fd())},
		Out:    ui.Reporter{},
		NewFetcher: func(token string) (syncer.Fetcher, error) {
			return github.NewContentsClient(github.ContentsOptions{
				Host:  cfg.Host,
				Token: token,
			})
		},
		Marker: cfg.Marker,
	}

	if err := runner.Run(context.Background(), *req); err != nil {
		ui.Fail("%v", err)
		ui.Footer()
		os.Exit(1)
	}

	ui.Footer()
}

// installInterruptHandler logs abnormal termination before exiting. It
// does not attempt any restoration; the explicit download failure path
// owns that.
func installInterruptHandler() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-ch
		ui.Fail("Interrupted (%v), exiting", sig)
		os.Exit(1)
	}()
}
