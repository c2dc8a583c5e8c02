// SPDX-License-Identifier: MIT
// Package match decides acceptance by backtracking directly over the live state
// graph, with no transition table.
//
// Rules, for a state s and remaining input w:
//   - w empty: accept if s is accepting; otherwise try every ε destination.
//   - w = c·rest: try every destination on c against rest, each with a fresh
//     visited-set; if none accepts, try every ε destination against w.
//
// The visited-set guards ε cycles. It is scoped to one input position: ε steps
// at the same position share it, consuming a symbol starts a new one, so a
// state may be revisited at a different position.
//
// Complexity:
//
//	Exponential in the worst case (classic NFA backtracking). Use the dfa
//	package for performance-sensitive matching.
package match

import (
	"github.com/katalvlaran/fsm/fragment"
	"github.com/katalvlaran/fsm/state"
)

// frame is one pending (state, input position) exploration.
type frame struct {
	id   state.StateID
	pos  int
	seen map[state.StateID]bool
}

// matcher encapsulates the worklist of one Test call.
type matcher struct {
	arena *state.Arena
	input []string
	stack []frame
}

// Test reports whether the automaton entered at id accepts input.
// Unknown states never accept.
func Test(a *state.Arena, id state.StateID, input []string) bool {
	if a == nil || !a.Has(id) {
		return false
	}
	m := &matcher{arena: a, input: input}
	m.stack = append(m.stack, frame{id: id, pos: 0, seen: make(map[state.StateID]bool)})

	return m.run()
}

// Matches reports whether fragment f accepts the symbol sequence input.
func Matches(f fragment.Fragment, input []string) bool {
	return Test(f.Arena(), f.Entry, input)
}

// MatchString reports whether f accepts s split into single code points.
func MatchString(f fragment.Fragment, s string) bool {
	return Matches(f, Symbols(s))
}

// Symbols splits s into one symbol per code point.
func Symbols(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

// run pops frames until one accepts or the worklist is exhausted.
// Frames are pushed in reverse so alternatives are tried in edge order:
// symbol destinations first, then ε destinations.
func (m *matcher) run() bool {
	for len(m.stack) > 0 {
		f := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]

		if f.seen[f.id] {
			continue
		}
		f.seen[f.id] = true

		s, err := m.arena.State(f.id)
		if err != nil {
			continue
		}
		if f.pos == len(m.input) && s.Accepting() {
			return true
		}

		eps := s.TransitionsFor(state.Epsilon)
		for i := len(eps) - 1; i >= 0; i-- {
			if !f.seen[eps[i]] {
				m.stack = append(m.stack, frame{id: eps[i], pos: f.pos, seen: f.seen})
			}
		}

		// ε is never a valid input symbol, so it cannot consume input.
		if f.pos < len(m.input) && m.input[f.pos] != state.Epsilon {
			next := s.TransitionsFor(m.input[f.pos])
			for i := len(next) - 1; i >= 0; i-- {
				m.stack = append(m.stack, frame{id: next[i], pos: f.pos + 1, seen: make(map[state.StateID]bool)})
			}
		}
	}

	return false
}
