// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsm/match"
)

// ValidEngines lists the automata match can run on.
var ValidEngines = []string{"nfa", "dfa", "min"}

// MatchOptions holds flags for the match command.
type MatchOptions struct {
	Engine    string
	MaxStates int
}

// Verdict is the outcome for one input.
type Verdict struct {
	Input    string `json:"input"`
	Accepted bool   `json:"accepted"`
}

// MatchResult is the payload of the match command.
type MatchResult struct {
	Pattern  string    `json:"pattern"`
	Engine   string    `json:"engine"`
	Results  []Verdict `json:"results"`
	Rejected int       `json:"rejected"`
}

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MatchOptions{}

	cmd := &cobra.Command{
		Use:   "match <pattern> <input>...",
		Short: "Test inputs against a pattern",
		Long: `Compile the pattern and report, for every input, whether it is in the
pattern's language. Inputs are split into Unicode code points after NFC
normalization. Exits 1 if any input is rejected.`,
		Args:          usageArgs(cobra.MinimumNArgs(2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(rootOpts, opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", "nfa", "automaton to run (nfa|dfa|min)")
	cmd.Flags().IntVar(&opts.MaxStates, "max-states", 0, "abort determinization beyond this many states (0 = no limit)")

	return cmd
}

func runMatch(rootOpts *RootOptions, opts *MatchOptions, src string, inputs []string, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)
	if !slices.Contains(ValidEngines, opts.Engine) {
		return f.fail(ErrCodeFlag, "invalid engine", fmt.Errorf("%q is not one of %v", opts.Engine, ValidEngines))
	}
	logger := newLogger(rootOpts, f.GetErrWriter())

	a, err := compile(f, logger, src, BuildOptions{
		DFA:       opts.Engine == "dfa",
		Minimize:  opts.Engine == "min",
		MaxStates: opts.MaxStates,
	})
	if err != nil {
		return err
	}

	res := MatchResult{Pattern: src, Engine: opts.Engine, Results: make([]Verdict, 0, len(inputs))}
	for _, in := range inputs {
		symbols := match.Symbols(normalize(in))
		var ok bool
		if a.dfa != nil {
			ok = a.dfa.Accepts(symbols)
		} else {
			ok = match.Matches(a.fragment, symbols)
		}
		logger.Debug("input matched", "input", in, "symbols", len(symbols), "accepted", ok)
		res.Results = append(res.Results, Verdict{Input: in, Accepted: ok})
		if !ok {
			res.Rejected++
		}
	}

	if err := f.Success(res, func(w io.Writer) error {
		for _, v := range res.Results {
			verdict := "reject"
			if v.Accepted {
				verdict = "accept"
			}
			if _, err := fmt.Fprintf(w, "%s\t%q\n", verdict, v.Input); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	if res.Rejected > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d inputs rejected", res.Rejected, len(inputs)))
	}

	return nil
}
