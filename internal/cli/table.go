// SPDX-License-Identifier: MIT
package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsm/render"
)

// NFAState is one row of a flattened NFA in JSON output.
type NFAState struct {
	ID        int       `json:"id"`
	Accepting bool      `json:"accepting"`
	Cells     []NFACell `json:"cells"`
}

// NFACell is one symbol of an NFA row and its merged destinations.
type NFACell struct {
	Symbol string `json:"symbol"`
	Dest   []int  `json:"dest"`
}

// DFAState is one DFA state in JSON output.
type DFAState struct {
	Key         string            `json:"key"`
	Accepting   bool              `json:"accepting"`
	NFAStates   []int             `json:"nfa_states"`
	Transitions map[string]string `json:"transitions"`
}

// TableResult is the payload of the table command. Exactly one of NFA or DFA is set.
type TableResult struct {
	Pattern string     `json:"pattern"`
	Start   string     `json:"start"`
	NFA     []NFAState `json:"nfa,omitempty"`
	DFA     []DFAState `json:"dfa,omitempty"`
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{}

	cmd := &cobra.Command{
		Use:   "table <pattern>",
		Short: "Print the transition table of a pattern's automaton",
		Long: `Print the flattened ε-NFA of the pattern, or with --dfa / --minimize the
DFA built from it. '>' marks the start state and '*' accepting states.`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(rootOpts, opts, args[0], cmd)
		},
	}
	bindBuildFlags(cmd, opts)

	return cmd
}

func runTable(rootOpts *RootOptions, opts *BuildOptions, src string, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)
	a, err := compile(f, newLogger(rootOpts, f.GetErrWriter()), src, *opts)
	if err != nil {
		return err
	}

	if a.dfa != nil {
		return f.Success(a.dfaResult(src), func(w io.Writer) error {
			return render.WriteDFATable(w, a.dfa)
		})
	}

	return f.Success(a.nfaResult(src), func(w io.Writer) error {
		return render.WriteNFATable(w, a.table)
	})
}

func (a *automaton) nfaResult(src string) TableResult {
	res := TableResult{Pattern: src, Start: strconv.Itoa(int(a.table.Start()))}
	for _, id := range a.table.IDs() {
		row := NFAState{ID: int(id), Accepting: id == a.accept, Cells: []NFACell{}}
		for _, c := range a.table.Row(id) {
			dest := make([]int, len(c.Dest))
			for i, d := range c.Dest {
				dest[i] = int(d)
			}
			row.Cells = append(row.Cells, NFACell{Symbol: c.Symbol, Dest: dest})
		}
		res.NFA = append(res.NFA, row)
	}

	return res
}

func (a *automaton) dfaResult(src string) TableResult {
	res := TableResult{Pattern: src, Start: a.dfa.Start().String()}
	for _, k := range a.dfa.States() {
		set := a.dfa.Set(k)
		ids := make([]int, len(set))
		for i, id := range set {
			ids[i] = int(id)
		}
		trans := make(map[string]string)
		for sym, next := range a.dfa.Transitions(k) {
			trans[sym] = next.String()
		}
		res.DFA = append(res.DFA, DFAState{
			Key:         k.String(),
			Accepting:   a.dfa.IsAccepting(k),
			NFAStates:   ids,
			Transitions: trans,
		})
	}

	return res
}
