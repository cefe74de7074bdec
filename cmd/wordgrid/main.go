// Command wordgrid finds and scores words on letter grid boards.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/wordgrid/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
