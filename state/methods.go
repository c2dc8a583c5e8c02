// SPDX-License-Identifier: MIT
// File: methods.go
// Role: State lifecycle and transition queries.
//
// Determinism:
//   - Symbols() returns symbols in first-insertion order.
//   - TransitionsFor() returns destinations in insertion order, duplicates kept.

package state

import (
	"fmt"

	"github.com/google/uuid"
)

// ID returns the arena session identifier.
func (a *Arena) ID() uuid.UUID { return a.id }

// Len reports how many states the arena has allocated.
func (a *Arena) Len() int { return len(a.states) }

// Has reports whether id names a state of this arena.
func (a *Arena) Has(id StateID) bool {
	return id >= 0 && int(id) < len(a.states)
}

// NewState allocates a state and returns its ID.
// Complexity: O(1) amortized.
func (a *Arena) NewState(accepting bool) StateID {
	id := StateID(len(a.states))
	a.states = append(a.states, &State{
		id:        id,
		accepting: accepting,
		edges:     make(map[string][]StateID),
	})

	return id
}

// State returns the live state for id.
// Returns ErrStateNotFound when id was not allocated by this arena.
func (a *Arena) State(id StateID) (*State, error) {
	if !a.Has(id) {
		return nil, fmt.Errorf("%w: %d (arena %s holds %d states)", ErrStateNotFound, id, a.id, len(a.states))
	}

	return a.states[id], nil
}

// AddTransition appends an edge from→to labelled symbol.
// Both endpoints must belong to the arena and symbol must be non-empty.
func (a *Arena) AddTransition(from StateID, symbol string, to StateID) error {
	if symbol == "" {
		return ErrEmptySymbol
	}
	src, err := a.State(from)
	if err != nil {
		return err
	}
	if !a.Has(to) {
		return fmt.Errorf("%w: destination %d", ErrStateNotFound, to)
	}
	src.AddTransition(symbol, to)

	return nil
}

// Accepting reports the acceptance flag of id; unknown IDs are never accepting.
func (a *Arena) Accepting(id StateID) bool {
	if !a.Has(id) {
		return false
	}

	return a.states[id].accepting
}

// ID returns the state's identifier within its arena.
func (s *State) ID() StateID { return s.id }

// Accepting reports whether the state is accepting.
func (s *State) Accepting() bool { return s.accepting }

// SetAccepting overwrites the acceptance flag.
func (s *State) SetAccepting(accepting bool) { s.accepting = accepting }

// AddTransition appends to to the destination list of symbol. Order is preserved
// and repeated destinations are kept.
func (s *State) AddTransition(symbol string, to StateID) {
	if _, ok := s.edges[symbol]; !ok {
		s.symbols = append(s.symbols, symbol)
	}
	s.edges[symbol] = append(s.edges[symbol], to)
}

// TransitionsFor returns a copy of the destinations for symbol, or nil if there are none.
func (s *State) TransitionsFor(symbol string) []StateID {
	dst := s.edges[symbol]
	if len(dst) == 0 {
		return nil
	}
	out := make([]StateID, len(dst))
	copy(out, dst)

	return out
}

// Symbols returns every symbol with at least one outgoing edge, Epsilon included,
// in first-insertion order.
func (s *State) Symbols() []string {
	out := make([]string, len(s.symbols))
	copy(out, s.symbols)

	return out
}

// EdgeCount returns the number of outgoing edges, counting repeats.
func (s *State) EdgeCount() int {
	var n int
	for _, dst := range s.edges {
		n += len(dst)
	}

	return n
}
