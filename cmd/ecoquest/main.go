package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/ecoquest/internal/cli"
	"github.com/rshade/ecoquest/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// extractExitCode maps an error to a process exit code: 0 for nil, the code of
// a cli.ExitError, otherwise 1.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func main() {
	if err := run(); err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(extractExitCode(err))
	}
}
