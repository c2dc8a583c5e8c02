// SPDX-License-Identifier: MIT
// Package dfa converts a flattened NFA into an equivalent DFA by subset
// construction and minimizes DFAs by partition refinement.
//
// Determinize:
//  1. start = ε-closure({table.Start()}), computed over the table only.
//  2. Pop a state D (FIFO). For every alphabet symbol, next = ε-closure(move(D, symbol)).
//     Empty targets are not recorded; a missing transition rejects.
//  3. next is canonicalized to a Key; unseen keys are enqueued exactly once.
//  4. A state accepts iff its set contains the NFA accept ID.
//
// Termination: an N-state NFA has at most 2^N canonical subsets and each is
// enqueued at most once.
package dfa

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/fsm/flatten"
	"github.com/katalvlaran/fsm/state"
)

// EpsilonClosure returns the smallest set containing ids and closed under the
// table's ε edges, in canonical order. Only edges present in the table are followed.
func EpsilonClosure(t *flatten.Table, ids []state.StateID) []state.StateID {
	seen := make(map[state.StateID]bool, len(ids))
	queue := make([]state.StateID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			queue = append(queue, id)
		}
	}
	for i := 0; i < len(queue); i++ {
		for _, next := range t.Destinations(queue[i], state.Epsilon) {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	out, _ := Canonical(queue)

	return out
}

// Move returns the union of every table destination on symbol from ids, in canonical order.
func Move(t *flatten.Table, ids []state.StateID, symbol string) []state.StateID {
	var out []state.StateID
	for _, id := range ids {
		out = append(out, t.Destinations(id, symbol)...)
	}
	out, _ = Canonical(out)

	return out
}

// Determinize runs subset construction over t. accept is the NFA accept ID
// returned by flattening and must be a key of t.
// Returns ErrNilTable, ErrUnknownAccept, ErrOptionViolation or ErrStateLimit.
func Determinize(t *flatten.Table, accept state.StateID, opts ...Option) (*DFA, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !t.Has(accept) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAccept, accept)
	}

	d := newDFA(t.Alphabet())
	startSet, startKey := Canonical(EpsilonClosure(t, []state.StateID{t.Start()}))
	d.start = startKey
	d.add(startKey, startSet, slices.Contains(startSet, accept))
	o.logger.Debug("dfa state discovered", "key", startKey.String(), "nfa_states", len(startSet), "start", true)

	queue := []Key{startKey}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, sym := range d.alphabet {
			moved := Move(t, d.sets[cur], sym)
			if len(moved) == 0 {
				continue
			}
			nextSet, next := Canonical(EpsilonClosure(t, moved))
			if !d.Has(next) {
				if o.maxStates > 0 && d.Len() >= o.maxStates {
					return nil, fmt.Errorf("%w: more than %d states", ErrStateLimit, o.maxStates)
				}
				d.add(next, nextSet, slices.Contains(nextSet, accept))
				queue = append(queue, next)
				o.logger.Debug("dfa state discovered", "key", next.String(), "nfa_states", len(nextSet), "via", sym)
			}
			d.trans[cur][sym] = next
		}
	}
	o.logger.Debug("determinization complete", "arena", t.ArenaID().String(), "states", d.Len(), "alphabet", len(d.alphabet), "accepting", len(d.Accepting()))

	return d, nil
}
