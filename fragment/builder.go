// SPDX-License-Identifier: MIT
// Package: fsm/fragment
//
// builder.go: Builder, Fragment and the composition operators.
//
// Invariant kept by every operator: the resulting fragment has exactly one
// accepting state, its Exit. Operands are consumed; their Entry/Exit flags are
// mutated in place and they must not be composed again.

package fragment

import (
	"unicode/utf8"

	"github.com/katalvlaran/fsm/state"
)

// Fragment is a partially built automaton with one entry and one currently
// accepting exit. It is a transient value; only the arena persists.
type Fragment struct {
	// Entry is the state matching starts from.
	Entry state.StateID

	// Exit is the fragment's only accepting state.
	Exit state.StateID

	arena *state.Arena
}

// Arena returns the arena holding the fragment's states (nil for the zero Fragment).
func (f Fragment) Arena() *state.Arena { return f.arena }

// Builder composes fragments inside a single arena.
// It is not safe for concurrent use.
type Builder struct {
	arena *state.Arena
}

// NewBuilder returns a Builder over a fresh arena unless WithArena is given.
func NewBuilder(opts ...Option) *Builder {
	cfg := newBuilderConfig(opts...)

	return &Builder{arena: cfg.arena}
}

// Arena returns the arena the Builder allocates into.
func (b *Builder) Arena() *state.Arena { return b.arena }

// Literal builds entry --symbol--> exit, with exit accepting.
// Returns ErrInvalidSymbol for "", Epsilon, or anything but one code point.
func (b *Builder) Literal(symbol string) (Fragment, error) {
	if symbol == "" || symbol == state.Epsilon {
		return Fragment{}, fragmentErrorf(MethodLiteral, ErrInvalidSymbol, "%q", symbol)
	}
	if !utf8.ValidString(symbol) || utf8.RuneCountInString(symbol) != 1 {
		return Fragment{}, fragmentErrorf(MethodLiteral, ErrInvalidSymbol, "%q is not a single code point", symbol)
	}

	entry := b.arena.NewState(false)
	exit := b.arena.NewState(true)
	if err := b.arena.AddTransition(entry, symbol, exit); err != nil {
		return Fragment{}, fragmentErrorf(MethodLiteral, err, "")
	}

	return b.fragment(entry, exit), nil
}

// Empty builds entry --ε--> exit; the fragment accepts only the empty string.
func (b *Builder) Empty() Fragment {
	entry := b.arena.NewState(false)
	exit := b.arena.NewState(true)
	b.state(entry).AddTransition(state.Epsilon, exit)

	return b.fragment(entry, exit)
}

// ConcatPair links a.Exit --ε--> b.Entry. a.Exit stops accepting, b.Exit stays
// accepting, and the result is (a.Entry, b.Exit).
func (b *Builder) ConcatPair(first, second Fragment) (Fragment, error) {
	if err := b.own(MethodConcatPair, first, second); err != nil {
		return Fragment{}, err
	}
	if err := distinct(MethodConcatPair, first, second); err != nil {
		return Fragment{}, err
	}

	b.state(first.Exit).SetAccepting(false)
	b.state(second.Exit).SetAccepting(true)
	b.state(first.Exit).AddTransition(state.Epsilon, second.Entry)

	return b.fragment(first.Entry, second.Exit), nil
}

// Concat left-folds ConcatPair over rest starting from first.
// With no rest, first is returned unchanged.
func (b *Builder) Concat(first Fragment, rest ...Fragment) (Fragment, error) {
	if err := b.own(MethodConcat, first); err != nil {
		return Fragment{}, err
	}
	if err := b.own(MethodConcat, rest...); err != nil {
		return Fragment{}, err
	}
	if err := distinct(MethodConcat, append([]Fragment{first}, rest...)...); err != nil {
		return Fragment{}, err
	}

	acc := first
	var err error
	for _, next := range rest {
		if acc, err = b.ConcatPair(acc, next); err != nil {
			return Fragment{}, err
		}
	}

	return acc, nil
}

// Alternate adds a new entry with ε edges to a.Entry and b.Entry (in that order);
// both old exits lose acceptance and gain an ε edge to a new accepting exit.
func (b *Builder) Alternate(left, right Fragment) (Fragment, error) {
	if err := b.own(MethodAlternate, left, right); err != nil {
		return Fragment{}, err
	}
	if err := distinct(MethodAlternate, left, right); err != nil {
		return Fragment{}, err
	}

	entry := b.arena.NewState(false)
	exit := b.arena.NewState(true)

	in := b.state(entry)
	in.AddTransition(state.Epsilon, left.Entry)
	in.AddTransition(state.Epsilon, right.Entry)

	for _, old := range []state.StateID{left.Exit, right.Exit} {
		s := b.state(old)
		s.SetAccepting(false)
		s.AddTransition(state.Epsilon, exit)
	}

	return b.fragment(entry, exit), nil
}

// Repeat is the Kleene star:
//
//	entry --ε--> a.Entry      enter the body
//	entry --ε--> exit         zero repetitions
//	a.Exit --ε--> exit        leave after a repetition
//	exit --ε--> a.Entry       back-edge, repeat again
//
// The back-edge is the cycle every traversal downstream must tolerate.
func (b *Builder) Repeat(body Fragment) (Fragment, error) {
	if err := b.own(MethodRepeat, body); err != nil {
		return Fragment{}, err
	}

	entry := b.arena.NewState(false)
	exit := b.arena.NewState(true)

	in := b.state(entry)
	in.AddTransition(state.Epsilon, body.Entry)
	in.AddTransition(state.Epsilon, exit)

	old := b.state(body.Exit)
	old.SetAccepting(false)
	old.AddTransition(state.Epsilon, exit)

	b.state(exit).AddTransition(state.Epsilon, body.Entry)

	return b.fragment(entry, exit), nil
}

// Plus accepts one or more repetitions of body. body.Exit stops accepting and
// gets an ε edge to a new exit, which loops back to body.Entry.
func (b *Builder) Plus(body Fragment) (Fragment, error) {
	if err := b.own(MethodPlus, body); err != nil {
		return Fragment{}, err
	}

	exit := b.arena.NewState(true)
	old := b.state(body.Exit)
	old.SetAccepting(false)
	old.AddTransition(state.Epsilon, exit)
	b.state(exit).AddTransition(state.Epsilon, body.Entry)

	return b.fragment(body.Entry, exit), nil
}

// Optional accepts body or the empty string.
func (b *Builder) Optional(body Fragment) (Fragment, error) {
	if err := b.own(MethodOptional, body); err != nil {
		return Fragment{}, err
	}

	entry := b.arena.NewState(false)
	exit := b.arena.NewState(true)

	in := b.state(entry)
	in.AddTransition(state.Epsilon, body.Entry)
	in.AddTransition(state.Epsilon, exit)

	old := b.state(body.Exit)
	old.SetAccepting(false)
	old.AddTransition(state.Epsilon, exit)

	return b.fragment(entry, exit), nil
}

// EpsilonLink adds a raw from --ε--> to edge inside the Builder's arena.
// Acceptance flags are left untouched.
func (b *Builder) EpsilonLink(from, to state.StateID) error {
	if err := b.arena.AddTransition(from, state.Epsilon, to); err != nil {
		return fragmentErrorf(MethodEpsilonLink, err, "")
	}

	return nil
}

// fragment wraps (entry, exit) with the Builder's arena.
func (b *Builder) fragment(entry, exit state.StateID) Fragment {
	return Fragment{Entry: entry, Exit: exit, arena: b.arena}
}

// own rejects operands that were not allocated in b's arena.
func (b *Builder) own(method string, frags ...Fragment) error {
	for _, f := range frags {
		if f.arena != b.arena {
			if f.arena == nil {
				return fragmentErrorf(method, ErrForeignFragment, "zero fragment")
			}
			return fragmentErrorf(method, ErrForeignFragment, "arena %s, builder arena %s", f.arena.ID(), b.arena.ID())
		}
		if !b.arena.Has(f.Entry) || !b.arena.Has(f.Exit) {
			return fragmentErrorf(method, ErrForeignFragment, "states %d/%d not allocated in arena %s", f.Entry, f.Exit, b.arena.ID())
		}
	}

	return nil
}

// distinct rejects operand lists in which two fragments share an Entry or Exit.
func distinct(method string, frags ...Fragment) error {
	owner := make(map[state.StateID]int, 2*len(frags))
	for i, f := range frags {
		for _, id := range []state.StateID{f.Entry, f.Exit} {
			if j, ok := owner[id]; ok && j != i {
				return fragmentErrorf(method, ErrSharedOperand, "operands %d and %d share state %d", j, i, id)
			}
			owner[id] = i
		}
	}

	return nil
}

// state resolves an ID already proven to belong to b's arena.
func (b *Builder) state(id state.StateID) *state.State {
	s, err := b.arena.State(id)
	if err != nil {
		// Fragment fields are only set by this package from arena allocations.
		panic(err)
	}

	return s
}
