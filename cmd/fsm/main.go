// SPDX-License-Identifier: MIT
// Command fsm compiles patterns into automata and matches inputs against them.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fsm/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
