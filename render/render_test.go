// SPDX-License-Identifier: MIT
package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fsm/dfa"
	"github.com/katalvlaran/fsm/flatten"
	"github.com/katalvlaran/fsm/fragment"
	"github.com/katalvlaran/fsm/pattern"
	"github.com/katalvlaran/fsm/render"
	"github.com/katalvlaran/fsm/state"
)

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
}

// loop builds 0 -ε-> 1 -ε-> 2 -ε-> 0 with 1 -a-> 3 and flattens it.
func loop(t *testing.T) (*flatten.Table, *dfa.DFA) {
	t.Helper()
	a := state.NewArena()
	s0 := a.NewState(false)
	s1 := a.NewState(false)
	s2 := a.NewState(false)
	s3 := a.NewState(true)
	require.NoError(t, a.AddTransition(s0, state.Epsilon, s1))
	require.NoError(t, a.AddTransition(s1, state.Epsilon, s2))
	require.NoError(t, a.AddTransition(s2, state.Epsilon, s0))
	require.NoError(t, a.AddTransition(s1, "a", s3))

	tbl, accept, err := flatten.FromArena(a, s0, s3)
	require.NoError(t, err)
	d, err := dfa.Determinize(tbl, accept)
	require.NoError(t, err)
	return tbl, d
}

func TestWriteNFATable(t *testing.T) {
	tbl, _ := loop(t)
	var buf bytes.Buffer
	require.NoError(t, render.WriteNFATable(&buf, tbl))
	golden(t).Assert(t, "nfa_table", buf.Bytes())
}

func TestWriteDFATable(t *testing.T) {
	_, d := loop(t)
	var buf bytes.Buffer
	require.NoError(t, render.WriteDFATable(&buf, d))
	golden(t).Assert(t, "dfa_table", buf.Bytes())

	buf.Reset()
	require.NoError(t, render.WriteDFATable(&buf, d.Complete()))
	golden(t).Assert(t, "dfa_complete_table", buf.Bytes())
}

func TestWriteNFADot(t *testing.T) {
	tbl, _ := loop(t)
	var buf bytes.Buffer
	require.NoError(t, render.WriteNFADot(&buf, "loop", tbl))
	golden(t).Assert(t, "nfa_dot", buf.Bytes())
}

func TestWriteDFADot(t *testing.T) {
	_, d := loop(t)
	var buf bytes.Buffer
	require.NoError(t, render.WriteDFADot(&buf, "loop", d))
	golden(t).Assert(t, "dfa_dot", buf.Bytes())
}

func TestRender_Stable(t *testing.T) {
	render1 := func() string {
		f, err := pattern.Compile(fragment.NewBuilder(), "(ab|a)*c")
		require.NoError(t, err)
		tbl, accept, err := flatten.Flatten(f)
		require.NoError(t, err)
		d, err := dfa.Determinize(tbl, accept)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, render.WriteNFATable(&buf, tbl))
		require.NoError(t, render.WriteDFATable(&buf, d.Minimize()))
		require.NoError(t, render.WriteDFADot(&buf, "m", d.Minimize()))
		return buf.String()
	}
	first := render1()
	assert.Equal(t, first, render1())
	assert.True(t, strings.HasPrefix(first, "STATE"))
	assert.Contains(t, first, "doublecircle")
}

func TestRender_Nil(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.WriteNFATable(&buf, nil), render.ErrNilAutomaton)
	assert.ErrorIs(t, render.WriteDFATable(&buf, nil), render.ErrNilAutomaton)
	assert.ErrorIs(t, render.WriteNFADot(&buf, "x", nil), render.ErrNilAutomaton)
	assert.ErrorIs(t, render.WriteDFADot(&buf, "x", nil), render.ErrNilAutomaton)
	assert.Zero(t, buf.Len())
}
