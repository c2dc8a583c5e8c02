// SPDX-License-Identifier: MIT

// Package fragment implements the Fragment Algebra: Thompson-style operators
// that compose State Graph pieces into larger automata.
//
// A Fragment is (Entry, Exit) where Exit is the only accepting state at
// construction time. Operators consume their operands and return a new
// Fragment that again has exactly one accepting exit:
//
//	Literal(s)        entry --s--> exit
//	ConcatPair(a, b)  a.exit --ε--> b.entry            result (a.entry, b.exit)
//	Concat(a, rest…)  left fold of ConcatPair
//	Alternate(a, b)   new entry --ε--> a.entry, b.entry; a.exit, b.exit --ε--> new exit
//	Repeat(a)         Kleene star with a back-edge exit --ε--> a.entry
//	Plus(a)           one or more
//	Optional(a)       zero or one
//	Empty()           accepts only ""
//
// All states are allocated in the Builder's state.Arena. Composing fragments
// that come from different arenas fails with ErrForeignFragment; share one
// arena between builders with WithArena when that is needed.
//
// Example (xy*|z):
//
//	b := fragment.NewBuilder()
//	x, _ := b.Literal("x")
//	y, _ := b.Literal("y")
//	z, _ := b.Literal("z")
//	ys, _ := b.Repeat(y)
//	xys, _ := b.Concat(x, ys)
//	f, _ := b.Alternate(xys, z)
package fragment
