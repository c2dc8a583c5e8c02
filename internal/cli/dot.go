// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsm/render"
)

// DotOptions holds flags for the dot command.
type DotOptions struct {
	BuildOptions
	Name string
}

// DotResult is the payload of the dot command.
type DotResult struct {
	Pattern string `json:"pattern"`
	Dot     string `json:"dot"`
}

// NewDotCommand creates the dot command.
func NewDotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DotOptions{}

	cmd := &cobra.Command{
		Use:   "dot <pattern>",
		Short: "Print a pattern's automaton as a Graphviz digraph",
		Long: `Print the flattened ε-NFA of the pattern, or with --dfa / --minimize the
DFA built from it, in Graphviz DOT. Pipe into "dot -Tsvg" to draw it.`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(rootOpts, opts, args[0], cmd)
		},
	}
	bindBuildFlags(cmd, &opts.BuildOptions)
	cmd.Flags().StringVar(&opts.Name, "name", "fsm", "digraph name")

	return cmd
}

func runDot(rootOpts *RootOptions, opts *DotOptions, src string, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)
	a, err := compile(f, newLogger(rootOpts, f.GetErrWriter()), src, opts.BuildOptions)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if a.dfa != nil {
		err = render.WriteDFADot(&buf, opts.Name, a.dfa)
	} else {
		err = render.WriteNFADot(&buf, opts.Name, a.table)
	}
	if err != nil {
		return f.fail(ErrCodeBuild, "render failed", err)
	}

	return f.Success(DotResult{Pattern: src, Dot: buf.String()}, func(w io.Writer) error {
		_, err := w.Write(buf.Bytes())
		return err
	})
}
