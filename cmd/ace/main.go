// Package main is the entry point for the ace CLI.
package main

import (
	"fmt"
	"os"

	"github.com/acetasks/ace/internal/app"
	"github.com/acetasks/ace/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// The container is created by the root command once global flags are parsed
	rootCmd := cli.NewRootCommand(app.New, version)
	return rootCmd.Execute()
}
