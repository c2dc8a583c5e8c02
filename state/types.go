// SPDX-License-Identifier: MIT
// Package state defines the arena-owned State Graph: states, their acceptance flag,
// and append-only symbol-labelled transitions.
//
// This file declares StateID, State, Arena, the reserved Epsilon symbol,
// sentinel errors, and the NewArena constructor.
//
// Errors:
//
//	ErrStateNotFound - state ID is not an index of the arena.
//	ErrEmptySymbol   - transition symbol is the empty string.
package state

import (
	"errors"

	"github.com/google/uuid"
)

// Epsilon is the reserved pseudo-symbol of transitions consumed without input.
// It is guaranteed distinct from every valid input symbol.
const Epsilon = "ε"

// Sentinel errors for state graph operations.
var (
	// ErrStateNotFound indicates an operation referenced a state the arena never allocated.
	ErrStateNotFound = errors.New("state: state not found")

	// ErrEmptySymbol indicates a transition was labelled with the empty string.
	ErrEmptySymbol = errors.New("state: symbol is empty")
)

// StateID identifies a State inside its Arena. IDs are dense indices assigned
// in allocation order and never reused.
type StateID int

// State is a node of the automaton graph.
//
// Transitions map a symbol to an ordered list of destinations; the same destination
// may appear several times. symbols remembers first-insertion order so that every
// enumeration over a state is deterministic.
type State struct {
	id        StateID
	accepting bool
	symbols   []string
	edges     map[string][]StateID
}

// Arena owns every State created during one construction session.
//
// States reference each other by StateID, so cycles introduced by repetition are
// plain index back-references. The arena is append-only and not safe for concurrent
// mutation; once flattened, the resulting table may be shared freely.
type Arena struct {
	id     uuid.UUID
	states []*State
}

// NewArena returns an empty arena tagged with a fresh time-ordered UUID.
// Complexity: O(1).
func NewArena() *Arena {
	return &Arena{id: uuid.Must(uuid.NewV7())}
}
