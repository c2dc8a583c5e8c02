// SPDX-License-Identifier: MIT

// Package state provides the node/edge data model shared by every automaton
// built with this module.
//
// A State has an acceptance flag and a mapping from symbol to an ordered list
// of destination states. Nondeterminism is expressed by several destinations
// for one symbol; Epsilon is the reserved pseudo-symbol for transitions that
// consume no input.
//
// Ownership:
//
//	All states live in an Arena and are addressed by StateID (a dense index).
//	Nothing is ever freed or removed while the arena is reachable, so the
//	back-edges created by repetition are ordinary index references and never a
//	memory-management hazard.
//
// Identity:
//
//	Visited-sets throughout the module are keyed by StateID. Structural
//	equality of states is never used; it is ambiguous in the presence of cycles.
//
// Core Methods:
//
//	NewArena() *Arena
//	(*Arena).NewState(accepting bool) StateID            // O(1)
//	(*Arena).State(id StateID) (*State, error)            // O(1)
//	(*Arena).AddTransition(from, symbol, to) error        // O(1) amortized
//	(*State).AddTransition(symbol string, to StateID)     // O(1) amortized
//	(*State).TransitionsFor(symbol string) []StateID      // O(k)
//	(*State).Symbols() []string                           // O(k)
//
// Concurrency:
//
//	An Arena is mutated by a single builder during construction and is not
//	guarded by locks. Share the flattened table, not the arena, across goroutines.
package state
