// SPDX-License-Identifier: MIT
// Package pattern is a thin textual front-end over the fragment operators.
//
// It parses a minimal pattern syntax and calls the Fragment Algebra; it adds no
// semantics of its own:
//
//	alt  := seq ( '|' seq )*
//	seq  := term+
//	term := atom ( '*' | '+' | '?' )*
//	atom := char | '\' char | '(' alt ')'
//
// so that Compile(b, "xy*|z") builds exactly
// Alternate(Concat(Literal("x"), Repeat(Literal("y"))), Literal("z")).
package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/fsm/fragment"
)

// ErrSyntax is returned when src does not match the pattern grammar.
var ErrSyntax = errors.New("pattern: syntax error")

// Alternation is one or more sequences separated by '|'.
type Alternation struct {
	Branches []*Sequence `parser:"@@ ( '|' @@ )*"`
}

// Sequence is one or more terms, concatenated.
type Sequence struct {
	Terms []*Term `parser:"@@+"`
}

// Term is an atom followed by any number of postfix operators.
type Term struct {
	Atom *Atom    `parser:"@@"`
	Ops  []string `parser:"@( '*' | '+' | '?' )*"`
}

// Atom is a literal symbol, an escaped symbol, or a parenthesised group.
type Atom struct {
	Char    *string      `parser:"  @Char"`
	Escaped *string      `parser:"| @Escaped"`
	Group   *Alternation `parser:"| '(' @@ ')'"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escaped", Pattern: `\\.`},
	{Name: "Operator", Pattern: `[|*+?()]`},
	{Name: "Char", Pattern: `[^|*+?()\\]`},
})

var patternParser = participle.MustBuild[Alternation](participle.Lexer(patternLexer))

// Parse returns the syntax tree of src.
func Parse(src string) (*Alternation, error) {
	ast, err := patternParser.ParseString("pattern", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return ast, nil
}

// Compile parses src and builds its automaton with b.
// Syntax errors wrap ErrSyntax; invalid symbols wrap fragment.ErrInvalidSymbol.
func Compile(b *fragment.Builder, src string) (fragment.Fragment, error) {
	ast, err := Parse(src)
	if err != nil {
		return fragment.Fragment{}, err
	}
	f, err := ast.build(b)
	if err != nil {
		return fragment.Fragment{}, fmt.Errorf("pattern %q: %w", src, err)
	}

	return f, nil
}

func (a *Alternation) build(b *fragment.Builder) (fragment.Fragment, error) {
	acc, err := a.Branches[0].build(b)
	if err != nil {
		return fragment.Fragment{}, err
	}
	for _, branch := range a.Branches[1:] {
		next, err := branch.build(b)
		if err != nil {
			return fragment.Fragment{}, err
		}
		if acc, err = b.Alternate(acc, next); err != nil {
			return fragment.Fragment{}, err
		}
	}

	return acc, nil
}

func (s *Sequence) build(b *fragment.Builder) (fragment.Fragment, error) {
	parts := make([]fragment.Fragment, 0, len(s.Terms))
	for _, term := range s.Terms {
		f, err := term.build(b)
		if err != nil {
			return fragment.Fragment{}, err
		}
		parts = append(parts, f)
	}

	return b.Concat(parts[0], parts[1:]...)
}

func (t *Term) build(b *fragment.Builder) (fragment.Fragment, error) {
	f, err := t.Atom.build(b)
	if err != nil {
		return fragment.Fragment{}, err
	}
	for _, op := range t.Ops {
		switch op {
		case "*":
			f, err = b.Repeat(f)
		case "+":
			f, err = b.Plus(f)
		case "?":
			f, err = b.Optional(f)
		}
		if err != nil {
			return fragment.Fragment{}, err
		}
	}

	return f, nil
}

func (a *Atom) build(b *fragment.Builder) (fragment.Fragment, error) {
	switch {
	case a.Char != nil:
		return b.Literal(*a.Char)
	case a.Escaped != nil:
		return b.Literal(strings.TrimPrefix(*a.Escaped, `\`))
	default:
		return a.Group.build(b)
	}
}
