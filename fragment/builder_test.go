// SPDX-License-Identifier: MIT
package fragment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fsm/fragment"
	"github.com/katalvlaran/fsm/state"
)

// reachable walks the arena from f.Entry and returns every reachable state ID.
func reachable(t *testing.T, f fragment.Fragment) []state.StateID {
	t.Helper()
	a := f.Arena()
	seen := map[state.StateID]bool{f.Entry: true}
	stack := []state.StateID{f.Entry}
	var out []state.StateID
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, id)
		s, err := a.State(id)
		require.NoError(t, err)
		for _, sym := range s.Symbols() {
			for _, dst := range s.TransitionsFor(sym) {
				if !seen[dst] {
					seen[dst] = true
					stack = append(stack, dst)
				}
			}
		}
	}

	return out
}

// assertSingleAccept checks the fragment invariant: exactly one reachable
// accepting state and it is f.Exit.
func assertSingleAccept(t *testing.T, f fragment.Fragment) {
	t.Helper()
	var accepting []state.StateID
	for _, id := range reachable(t, f) {
		if f.Arena().Accepting(id) {
			accepting = append(accepting, id)
		}
	}
	assert.Equal(t, []state.StateID{f.Exit}, accepting)
}

func mustState(t *testing.T, f fragment.Fragment, id state.StateID) *state.State {
	t.Helper()
	s, err := f.Arena().State(id)
	require.NoError(t, err)

	return s
}

func TestLiteral_Shape(t *testing.T) {
	b := fragment.NewBuilder()
	f, err := b.Literal("a")
	require.NoError(t, err)

	entry := mustState(t, f, f.Entry)
	assert.False(t, entry.Accepting())
	assert.Equal(t, []string{"a"}, entry.Symbols())
	assert.Equal(t, []state.StateID{f.Exit}, entry.TransitionsFor("a"))
	assert.True(t, mustState(t, f, f.Exit).Accepting())
	assert.Same(t, b.Arena(), f.Arena())
}

func TestLiteral_InvalidSymbols(t *testing.T) {
	b := fragment.NewBuilder()
	for _, sym := range []string{"", state.Epsilon, "ab", "\xff"} {
		_, err := b.Literal(sym)
		assert.ErrorIs(t, err, fragment.ErrInvalidSymbol, "symbol %q", sym)
	}
	assert.Equal(t, 0, b.Arena().Len(), "rejected literals allocate nothing")

	_, err := b.Literal("é")
	assert.NoError(t, err, "one multi-byte code point is a valid symbol")
}

func TestConcatPair_Shape(t *testing.T) {
	b := fragment.NewBuilder()
	x, err := b.Literal("x")
	require.NoError(t, err)
	y, err := b.Literal("y")
	require.NoError(t, err)

	f, err := b.ConcatPair(x, y)
	require.NoError(t, err)
	assert.Equal(t, x.Entry, f.Entry)
	assert.Equal(t, y.Exit, f.Exit)

	joint := mustState(t, f, x.Exit)
	assert.False(t, joint.Accepting())
	assert.Equal(t, []state.StateID{y.Entry}, joint.TransitionsFor(state.Epsilon))
	assertSingleAccept(t, f)
}

func TestConcat_ZeroRestReturnsFirst(t *testing.T) {
	b := fragment.NewBuilder()
	x, err := b.Literal("x")
	require.NoError(t, err)

	f, err := b.Concat(x)
	require.NoError(t, err)
	assert.Equal(t, x, f)
	assert.Equal(t, 2, b.Arena().Len())
}

func TestConcat_FoldsLeft(t *testing.T) {
	b := fragment.NewBuilder()
	var parts []fragment.Fragment
	for _, s := range []string{"a", "b", "c"} {
		p, err := b.Literal(s)
		require.NoError(t, err)
		parts = append(parts, p)
	}

	f, err := b.Concat(parts[0], parts[1:]...)
	require.NoError(t, err)
	assert.Equal(t, parts[0].Entry, f.Entry)
	assert.Equal(t, parts[2].Exit, f.Exit)
	assert.Equal(t, 6, b.Arena().Len(), "concatenation allocates no states")
	assertSingleAccept(t, f)
}

func TestAlternate_Shape(t *testing.T) {
	b := fragment.NewBuilder()
	l, err := b.Literal("l")
	require.NoError(t, err)
	r, err := b.Literal("r")
	require.NoError(t, err)

	f, err := b.Alternate(l, r)
	require.NoError(t, err)

	entry := mustState(t, f, f.Entry)
	assert.Equal(t, []state.StateID{l.Entry, r.Entry}, entry.TransitionsFor(state.Epsilon))
	for _, old := range []state.StateID{l.Exit, r.Exit} {
		s := mustState(t, f, old)
		assert.False(t, s.Accepting())
		assert.Equal(t, []state.StateID{f.Exit}, s.TransitionsFor(state.Epsilon))
	}
	assertSingleAccept(t, f)
}

func TestRepeat_Shape(t *testing.T) {
	b := fragment.NewBuilder()
	a, err := b.Literal("a")
	require.NoError(t, err)

	f, err := b.Repeat(a)
	require.NoError(t, err)

	entry := mustState(t, f, f.Entry)
	assert.Equal(t, []state.StateID{a.Entry, f.Exit}, entry.TransitionsFor(state.Epsilon))

	body := mustState(t, f, a.Exit)
	assert.False(t, body.Accepting())
	assert.Equal(t, []state.StateID{f.Exit}, body.TransitionsFor(state.Epsilon))

	exit := mustState(t, f, f.Exit)
	assert.Equal(t, []state.StateID{a.Entry}, exit.TransitionsFor(state.Epsilon), "back-edge")
	assertSingleAccept(t, f)
}

func TestPlusAndOptional_KeepSingleAccept(t *testing.T) {
	b := fragment.NewBuilder()
	a, err := b.Literal("a")
	require.NoError(t, err)
	p, err := b.Plus(a)
	require.NoError(t, err)
	assert.Equal(t, a.Entry, p.Entry)
	assertSingleAccept(t, p)

	c, err := b.Literal("c")
	require.NoError(t, err)
	o, err := b.Optional(c)
	require.NoError(t, err)
	assertSingleAccept(t, o)

	e := b.Empty()
	assertSingleAccept(t, e)
}

func TestNestedComposition_KeepsSingleAccept(t *testing.T) {
	b := fragment.NewBuilder()
	x, _ := b.Literal("x")
	y, _ := b.Literal("y")
	z, _ := b.Literal("z")
	ys, err := b.Repeat(y)
	require.NoError(t, err)
	xys, err := b.Concat(x, ys)
	require.NoError(t, err)
	f, err := b.Alternate(xys, z)
	require.NoError(t, err)

	assertSingleAccept(t, f)
	assert.Len(t, reachable(t, f), b.Arena().Len())
}

func TestForeignFragments(t *testing.T) {
	b1, b2 := fragment.NewBuilder(), fragment.NewBuilder()
	a, err := b1.Literal("a")
	require.NoError(t, err)
	c, err := b2.Literal("c")
	require.NoError(t, err)

	_, err = b1.ConcatPair(a, c)
	assert.ErrorIs(t, err, fragment.ErrForeignFragment)
	_, err = b1.Alternate(a, c)
	assert.ErrorIs(t, err, fragment.ErrForeignFragment)
	_, err = b2.Repeat(a)
	assert.ErrorIs(t, err, fragment.ErrForeignFragment)
	_, err = b1.Concat(fragment.Fragment{})
	assert.ErrorIs(t, err, fragment.ErrForeignFragment)

	bogus := a
	bogus.Exit = 42
	_, err = b1.Plus(bogus)
	assert.ErrorIs(t, err, fragment.ErrForeignFragment)
}

func TestSharedOperands(t *testing.T) {
	b := fragment.NewBuilder()
	x, err := b.Literal("x")
	require.NoError(t, err)
	y, err := b.Literal("y")
	require.NoError(t, err)

	_, err = b.ConcatPair(x, x)
	assert.ErrorIs(t, err, fragment.ErrSharedOperand)
	_, err = b.Alternate(x, x)
	assert.ErrorIs(t, err, fragment.ErrSharedOperand)
	_, err = b.Concat(x, y, x)
	assert.ErrorIs(t, err, fragment.ErrSharedOperand)

	// A rejected call leaves the operands untouched.
	assertSingleAccept(t, x)
	assertSingleAccept(t, y)
	assert.Len(t, reachable(t, x), 2)

	// An operand already composed into another is caught through the shared entry.
	xy, err := b.ConcatPair(x, y)
	require.NoError(t, err)
	_, err = b.Alternate(xy, x)
	assert.ErrorIs(t, err, fragment.ErrSharedOperand)
	_, err = b.ConcatPair(xy, y)
	assert.ErrorIs(t, err, fragment.ErrSharedOperand, "shared exit")
}

func TestWithArena_SharesStates(t *testing.T) {
	b1 := fragment.NewBuilder()
	b2 := fragment.NewBuilder(fragment.WithArena(b1.Arena()))

	a, err := b1.Literal("a")
	require.NoError(t, err)
	c, err := b2.Literal("c")
	require.NoError(t, err)

	f, err := b2.Alternate(a, c)
	require.NoError(t, err)
	assertSingleAccept(t, f)

	assert.Panics(t, func() { fragment.WithArena(nil) })
}

func TestEpsilonLink(t *testing.T) {
	b := fragment.NewBuilder()
	a, err := b.Literal("a")
	require.NoError(t, err)

	require.NoError(t, b.EpsilonLink(a.Exit, a.Entry))
	assert.Equal(t, []state.StateID{a.Entry}, mustState(t, a, a.Exit).TransitionsFor(state.Epsilon))
	assert.True(t, mustState(t, a, a.Exit).Accepting(), "EpsilonLink leaves acceptance alone")

	assert.ErrorIs(t, b.EpsilonLink(a.Exit, 99), state.ErrStateNotFound)
}
