// Package main is the entry point for the taskbot CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/taskbot/internal/app"
	"github.com/runoshun/taskbot/internal/cli"
	"github.com/runoshun/taskbot/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	rootCmd := cli.NewRootCommand(app.New, version)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

// report prints err unless it is a rejected command line, whose
// message has already been shown in the response frame.
func report(w io.Writer, err error) {
	if domain.IsUserError(err) {
		return
	}
	_, _ = fmt.Fprintln(w, "Error:", err)
}
