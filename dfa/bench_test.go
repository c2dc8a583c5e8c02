// SPDX-License-Identifier: MIT
package dfa_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/fsm/dfa"
	"github.com/katalvlaran/fsm/flatten"
	"github.com/katalvlaran/fsm/fragment"
	"github.com/katalvlaran/fsm/match"
	"github.com/katalvlaran/fsm/pattern"
	"github.com/katalvlaran/fsm/state"
)

const benchPattern = "(a|b)*abb"

// benchInput is 64 alternating symbols ending in the accepting suffix.
var benchInput = match.Symbols(strings.Repeat("ab", 32) + "abb")

func benchAutomaton(b *testing.B) (fragment.Fragment, *flatten.Table, state.StateID) {
	b.Helper()
	f, err := pattern.Compile(fragment.NewBuilder(), benchPattern)
	if err != nil {
		b.Fatal(err)
	}
	tbl, accept, err := flatten.Flatten(f)
	if err != nil {
		b.Fatal(err)
	}
	return f, tbl, accept
}

// BenchmarkMatch runs the backtracking matcher over the live arena.
func BenchmarkMatch(b *testing.B) {
	f, _, _ := benchAutomaton(b)

	b.ReportAllocs()
	b.SetBytes(int64(len(benchInput)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !match.Matches(f, benchInput) {
			b.Fatal("expected match")
		}
	}
}

// BenchmarkDFAAccepts runs the same input through the determinized automaton.
func BenchmarkDFAAccepts(b *testing.B) {
	_, tbl, accept := benchAutomaton(b)
	d, err := dfa.Determinize(tbl, accept)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(benchInput)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !d.Accepts(benchInput) {
			b.Fatal("expected match")
		}
	}
}

// BenchmarkMinimalDFAAccepts runs the input through the minimal complete DFA.
func BenchmarkMinimalDFAAccepts(b *testing.B) {
	_, tbl, accept := benchAutomaton(b)
	d, err := dfa.Determinize(tbl, accept)
	if err != nil {
		b.Fatal(err)
	}
	m := d.Minimize()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !m.Accepts(benchInput) {
			b.Fatal("expected match")
		}
	}
}

// BenchmarkDeterminize measures subset construction plus minimization.
func BenchmarkDeterminize(b *testing.B) {
	_, tbl, accept := benchAutomaton(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		d, err := dfa.Determinize(tbl, accept)
		if err != nil {
			b.Fatal(err)
		}
		_ = d.Minimize()
	}
}
