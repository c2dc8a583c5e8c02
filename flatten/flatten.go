// SPDX-License-Identifier: MIT
// Package flatten turns the live state graph reachable from one entry state
// into an immutable transition table, assigning no new identifiers: table keys
// are the arena StateIDs, so the accept ID survives flattening unchanged.
//
// The traversal is iterative, uses an explicit queue (or stack) and a visited
// set keyed by StateID, and therefore terminates in O(states + edges) even on
// the cycles introduced by repetition.
package flatten

import (
	"fmt"

	"github.com/katalvlaran/fsm/fragment"
	"github.com/katalvlaran/fsm/state"
)

// walker encapsulates mutable traversal state.
type walker struct {
	arena   *state.Arena
	opts    Options
	work    []state.StateID
	visited map[state.StateID]bool
	order   []state.StateID
}

// Flatten builds the transition table of f and returns it with f's accept ID.
// Returns ErrNilArena for the zero Fragment, ErrOptionViolation for bad options,
// ErrInconsistentGraph for broken invariants, or any OnVisit hook error.
func Flatten(f fragment.Fragment, opts ...Option) (*Table, state.StateID, error) {
	if f.Arena() == nil {
		return nil, 0, ErrNilArena
	}

	return FromArena(f.Arena(), f.Entry, f.Exit, opts...)
}

// FromArena flattens the graph reachable from entry, designating exit as the
// accept state. exit must be reachable from entry.
func FromArena(a *state.Arena, entry, exit state.StateID, opts ...Option) (*Table, state.StateID, error) {
	if a == nil {
		return nil, 0, ErrNilArena
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}
	if !a.Has(entry) {
		return nil, 0, fmt.Errorf("%w: entry %d has no live state", ErrInconsistentGraph, entry)
	}
	if !a.Has(exit) {
		return nil, 0, fmt.Errorf("%w: exit %d has no live state", ErrInconsistentGraph, exit)
	}

	w := &walker{
		arena:   a,
		opts:    o,
		work:    make([]state.StateID, 0, a.Len()),
		visited: make(map[state.StateID]bool, a.Len()),
		order:   make([]state.StateID, 0, a.Len()),
	}

	// Phase 1: discover every reachable state before emitting any cell.
	w.push(entry)
	if err := w.loop(); err != nil {
		return nil, 0, err
	}
	if !w.visited[exit] {
		return nil, 0, fmt.Errorf("%w: exit %d unreachable from entry %d", ErrInconsistentGraph, exit, entry)
	}

	// Phase 2: emit one row per discovered state.
	t, err := w.emit(entry, exit)
	if err != nil {
		return nil, 0, err
	}

	return t, exit, nil
}

// push marks id visited and appends it to the worklist.
func (w *walker) push(id state.StateID) {
	w.visited[id] = true
	w.work = append(w.work, id)
}

// pop removes the next ID: the front for breadth-first, the back for depth-first.
func (w *walker) pop() state.StateID {
	var id state.StateID
	if w.opts.DepthFirst {
		id = w.work[len(w.work)-1]
		w.work = w.work[:len(w.work)-1]
	} else {
		id = w.work[0]
		w.work = w.work[1:]
	}

	return id
}

// loop drains the worklist, visiting each state once.
func (w *walker) loop() error {
	for len(w.work) > 0 {
		id := w.pop()
		w.order = append(w.order, id)
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("flatten: OnVisit error at %d: %w", id, err)
		}

		s, err := w.arena.State(id)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInconsistentGraph, err)
		}
		for _, sym := range s.Symbols() {
			for _, dst := range s.TransitionsFor(sym) {
				if !w.arena.Has(dst) {
					return fmt.Errorf("%w: %d --%s--> %d has no live state", ErrInconsistentGraph, id, sym, dst)
				}
				if !w.visited[dst] {
					w.push(dst)
				}
			}
		}
	}

	return nil
}

// emit builds the table rows, merging repeated destinations per symbol.
func (w *walker) emit(entry, exit state.StateID) (*Table, error) {
	t := &Table{
		arena:     w.arena.ID(),
		start:     entry,
		accept:    exit,
		order:     w.order,
		rows:      make(map[state.StateID][]Cell, len(w.order)),
		accepting: make(map[state.StateID]bool),
	}
	for _, id := range w.order {
		s, err := w.arena.State(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInconsistentGraph, err)
		}
		if s.Accepting() {
			t.accepting[id] = true
		}

		syms := s.Symbols()
		cells := make([]Cell, 0, len(syms))
		for _, sym := range syms {
			cells = append(cells, Cell{Symbol: sym, Dest: dedup(s.TransitionsFor(sym))})
		}
		t.rows[id] = cells
	}

	return t, nil
}

// dedup keeps the first occurrence of every ID, preserving order.
func dedup(ids []state.StateID) []state.StateID {
	seen := make(map[state.StateID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
