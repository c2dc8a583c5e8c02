// SPDX-License-Identifier: MIT
// Package render prints flattened NFAs and DFAs as aligned transition tables
// and as Graphviz DOT digraphs.
//
// Output is fully deterministic: states appear in discovery order, NFA cells
// in each state's symbol order, and DFA cells in alphabet order. The start
// state is marked '>' and accepting states '*'.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/fsm/dfa"
	"github.com/katalvlaran/fsm/flatten"
	"github.com/katalvlaran/fsm/state"
)

// ErrNilAutomaton is returned when a nil table or DFA is passed in.
var ErrNilAutomaton = errors.New("render: automaton is nil")

const header = "STATE\tSYMBOL\tTRANSITIONS"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func marker(start, accepting bool) string {
	var m string
	if start {
		m += ">"
	}
	if accepting {
		m += "*"
	}

	return m
}

func idSet(ids []state.StateID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// WriteNFATable writes one line per (state, symbol) cell of t. States without
// outgoing edges get a single "-" line.
func WriteNFATable(w io.Writer, t *flatten.Table) error {
	if t == nil {
		return ErrNilAutomaton
	}
	tw := newTable(w)
	fmt.Fprintln(tw, header)
	for _, id := range t.IDs() {
		label := marker(id == t.Start(), id == t.Accept()) + strconv.Itoa(int(id))
		cells := t.Row(id)
		if len(cells) == 0 {
			fmt.Fprintf(tw, "%s\t-\t-\n", label)
			continue
		}
		for _, c := range cells {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", label, c.Symbol, idSet(c.Dest))
		}
	}

	return tw.Flush()
}

// WriteDFATable writes one line per recorded transition of d, states labelled
// by their Key. Missing transitions are omitted; a state with none gets "-".
func WriteDFATable(w io.Writer, d *dfa.DFA) error {
	if d == nil {
		return ErrNilAutomaton
	}
	tw := newTable(w)
	fmt.Fprintln(tw, header)
	for _, k := range d.States() {
		label := marker(k == d.Start(), d.IsAccepting(k)) + k.String()
		wrote := false
		for _, sym := range d.Alphabet() {
			next, ok := d.Next(k, sym)
			if !ok {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", label, sym, next.String())
			wrote = true
		}
		if !wrote {
			fmt.Fprintf(tw, "%s\t-\t-\n", label)
		}
	}

	return tw.Flush()
}

// dotGraph accumulates a digraph body.
type dotGraph struct {
	sb strings.Builder
}

func newDot(name, start string) *dotGraph {
	g := &dotGraph{}
	fmt.Fprintf(&g.sb, "digraph %q {\n", name)
	g.sb.WriteString("  rankdir=LR;\n")
	g.sb.WriteString("  node [shape=circle];\n")
	g.sb.WriteString("  _start [shape=point];\n")
	fmt.Fprintf(&g.sb, "  _start -> %q;\n", start)

	return g
}

func (g *dotGraph) accepting(node string) {
	fmt.Fprintf(&g.sb, "  %q [shape=doublecircle];\n", node)
}

func (g *dotGraph) edge(from, to, label string) {
	fmt.Fprintf(&g.sb, "  %q -> %q [label=%q];\n", from, to, label)
}

func (g *dotGraph) writeTo(w io.Writer) error {
	g.sb.WriteString("}\n")
	_, err := io.WriteString(w, g.sb.String())

	return err
}

// WriteNFADot writes t as a DOT digraph named name. Nodes are state IDs;
// merged destinations become one edge each.
func WriteNFADot(w io.Writer, name string, t *flatten.Table) error {
	if t == nil {
		return ErrNilAutomaton
	}
	node := func(id state.StateID) string { return strconv.Itoa(int(id)) }

	g := newDot(name, node(t.Start()))
	g.accepting(node(t.Accept()))
	for _, id := range t.IDs() {
		for _, c := range t.Row(id) {
			for _, dst := range c.Dest {
				g.edge(node(id), node(dst), c.Symbol)
			}
		}
	}

	return g.writeTo(w)
}

// WriteDFADot writes d as a DOT digraph named name. Nodes are Key strings.
func WriteDFADot(w io.Writer, name string, d *dfa.DFA) error {
	if d == nil {
		return ErrNilAutomaton
	}
	g := newDot(name, d.Start().String())
	for _, k := range d.Accepting() {
		g.accepting(k.String())
	}
	for _, k := range d.States() {
		for _, sym := range d.Alphabet() {
			if next, ok := d.Next(k, sym); ok {
				g.edge(k.String(), next.String(), sym)
			}
		}
	}

	return g.writeTo(w)
}
