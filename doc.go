// SPDX-License-Identifier: MIT

// Package fsm builds finite automata from small composable pieces, runs them,
// and turns them into deterministic and minimal form.
//
// The pipeline, one package per stage:
//
//	state/     arena-owned states, symbol → destination lists, ε as a reserved symbol
//	fragment/  Literal, Concat, Alternate, Repeat, Plus, Optional over one arena
//	flatten/   live graph → immutable transition table keyed by StateID
//	match/     backtracking acceptance test with per-position visited-sets
//	dfa/       subset construction, completion and Moore minimization
//	render/    aligned tables and Graphviz DOT for both NFA and DFA
//	pattern/   "xy*|z"-style text front-end over the fragment operators
//
// The fsm command (cmd/fsm) wires these together: match, table and dot.
//
// Quick start:
//
//	b := fragment.NewBuilder()
//	f, _ := pattern.Compile(b, "xy*|z")
//	match.MatchString(f, "xyy")            // true
//	tbl, accept, _ := flatten.Flatten(f)
//	d, _ := dfa.Determinize(tbl, accept)
//	d.Minimize().AcceptsString("z")        // true
package fsm
