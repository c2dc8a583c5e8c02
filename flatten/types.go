// SPDX-License-Identifier: MIT
// Package flatten provides options, error definitions and the transition table
// produced by flattening a live state graph.
package flatten

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/fsm/state"
)

// Sentinel errors for flattening.
var (
	// ErrNilArena is returned if a nil arena (or zero Fragment) is flattened.
	ErrNilArena = errors.New("flatten: arena is nil")

	// ErrInconsistentGraph reports a broken internal invariant: a destination
	// with no live state, a missing entry/exit, or an exit unreachable from entry.
	// It is not user-recoverable.
	ErrInconsistentGraph = errors.New("flatten: inconsistent graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flatten: invalid option supplied")
)

// Option configures flattening via functional arguments.
type Option func(*Options)

// Options holds traversal parameters and hooks.
type Options struct {
	// DepthFirst switches the worklist from a FIFO queue to a LIFO stack.
	// The table content is the same either way; only discovery order differs.
	DepthFirst bool

	// OnVisit is called once per state, in discovery order. Returning an
	// error aborts flattening and propagates that error.
	OnVisit func(id state.StateID) error

	err error
}

// DefaultOptions returns breadth-first traversal with a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		DepthFirst: false,
		OnVisit:    func(state.StateID) error { return nil },
	}
}

// WithDepthFirst traverses with an explicit stack instead of a queue.
func WithDepthFirst() Option {
	return func(o *Options) { o.DepthFirst = true }
}

// WithOnVisit registers a per-state hook. A nil fn is recorded as an
// ErrOptionViolation.
func WithOnVisit(fn func(id state.StateID) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnVisit is nil", ErrOptionViolation)
			return
		}
		o.OnVisit = fn
	}
}

// Cell is one row entry: a symbol and the deduplicated destinations reachable
// through it, in first-seen order.
type Cell struct {
	Symbol string
	Dest   []state.StateID
}

// Table is the flat NFA transition table: state ID → cells.
//
// Every destination referenced by any Cell is itself a key of the table.
// A Table is immutable once returned and safe for concurrent readers: every
// accessor returns a copy, so callers cannot reach the internal rows.
type Table struct {
	arena  uuid.UUID
	start  state.StateID
	accept state.StateID
	order  []state.StateID
	rows   map[state.StateID][]Cell

	// accepting holds the live acceptance flags seen at flatten time.
	accepting map[state.StateID]bool
}

// ArenaID returns the ID of the arena the table was flattened from.
func (t *Table) ArenaID() uuid.UUID { return t.arena }

// Start returns the entry state ID.
func (t *Table) Start() state.StateID { return t.start }

// Accept returns the designated accept ID (the exit of the flattened fragment).
func (t *Table) Accept() state.StateID { return t.accept }

// Len returns the number of states in the table.
func (t *Table) Len() int { return len(t.order) }

// Has reports whether id is a key of the table.
func (t *Table) Has(id state.StateID) bool {
	_, ok := t.rows[id]
	return ok
}

// IDs returns the state IDs in discovery order.
func (t *Table) IDs() []state.StateID {
	out := make([]state.StateID, len(t.order))
	copy(out, t.order)

	return out
}

// Row returns a copy of the cells of id in the state's symbol order (nil if unknown).
func (t *Table) Row(id state.StateID) []Cell {
	cells, ok := t.rows[id]
	if !ok {
		return nil
	}
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{Symbol: c.Symbol, Dest: slices.Clone(c.Dest)}
	}

	return out
}

// Destinations returns a copy of the destinations of id on symbol, or nil.
func (t *Table) Destinations(id state.StateID, symbol string) []state.StateID {
	for _, c := range t.rows[id] {
		if c.Symbol == symbol {
			return slices.Clone(c.Dest)
		}
	}

	return nil
}

// Alphabet returns every non-epsilon symbol used in the table, sorted.
func (t *Table) Alphabet() []string {
	seen := make(map[string]struct{})
	for _, id := range t.order {
		for _, c := range t.rows[id] {
			if c.Symbol != state.Epsilon {
				seen[c.Symbol] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// AcceptingIDs returns, in discovery order, the states whose live acceptance
// flag was set when the table was built. For a well-formed fragment this is
// exactly [Accept()].
func (t *Table) AcceptingIDs() []state.StateID {
	var out []state.StateID
	for _, id := range t.order {
		if t.accepting[id] {
			out = append(out, id)
		}
	}

	return out
}

// EdgeCount returns the number of (state, symbol, destination) triples after merging.
func (t *Table) EdgeCount() int {
	var n int
	for _, cells := range t.rows {
		for _, c := range cells {
			n += len(c.Dest)
		}
	}

	return n
}
