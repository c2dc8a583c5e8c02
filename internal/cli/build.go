// SPDX-License-Identifier: MIT
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/fsm/dfa"
	"github.com/katalvlaran/fsm/flatten"
	"github.com/katalvlaran/fsm/fragment"
	"github.com/katalvlaran/fsm/pattern"
	"github.com/katalvlaran/fsm/state"
)

// BuildOptions selects which automaton a command works on.
type BuildOptions struct {
	DFA       bool
	Minimize  bool
	MaxStates int
}

func bindBuildFlags(cmd *cobra.Command, opts *BuildOptions) {
	cmd.Flags().BoolVar(&opts.DFA, "dfa", false, "determinize the NFA")
	cmd.Flags().BoolVar(&opts.Minimize, "minimize", false, "determinize and minimize (implies --dfa)")
	cmd.Flags().IntVar(&opts.MaxStates, "max-states", 0, "abort determinization beyond this many states (0 = no limit)")
}

// automaton is a compiled pattern at every stage the command asked for.
type automaton struct {
	fragment fragment.Fragment
	table    *flatten.Table
	accept   state.StateID
	dfa      *dfa.DFA // nil unless a DFA was requested
}

// normalize returns s in Unicode NFC, so that composed and decomposed
// spellings of the same text split into the same symbols.
func normalize(s string) string {
	return norm.NFC.String(s)
}

// compile builds src through the requested stages, reporting failures via f.
func compile(f *OutputFormatter, logger *slog.Logger, src string, opts BuildOptions) (*automaton, error) {
	frag, err := pattern.Compile(fragment.NewBuilder(), normalize(src))
	if err != nil {
		return nil, f.fail(ErrCodePattern, "invalid pattern", err)
	}
	tbl, accept, err := flatten.Flatten(frag)
	if err != nil {
		return nil, f.fail(ErrCodeBuild, "flatten failed", err)
	}
	logger.Debug("nfa flattened", "arena", tbl.ArenaID().String(), "pattern", src, "states", tbl.Len(), "edges", tbl.EdgeCount(), "accept", int(accept))

	a := &automaton{fragment: frag, table: tbl, accept: accept}
	if !opts.DFA && !opts.Minimize {
		return a, nil
	}

	d, err := dfa.Determinize(tbl, accept, dfa.WithLogger(logger), dfa.WithMaxStates(opts.MaxStates))
	if err != nil {
		return nil, f.fail(ErrCodeBuild, "determinize failed", err)
	}
	if opts.Minimize {
		before := d.Len()
		d = d.Minimize()
		logger.Debug("dfa minimized", "before", before, "after", d.Len())
	}
	a.dfa = d

	return a, nil
}
