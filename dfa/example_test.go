// SPDX-License-Identifier: MIT
package dfa_test

import (
	"fmt"

	"github.com/katalvlaran/fsm/dfa"
	"github.com/katalvlaran/fsm/flatten"
	"github.com/katalvlaran/fsm/fragment"
)

// ExampleDeterminize builds xy*|z with the fragment operators, then
// determinizes and minimizes it.
func ExampleDeterminize() {
	b := fragment.NewBuilder()
	x, _ := b.Literal("x")
	y, _ := b.Literal("y")
	z, _ := b.Literal("z")
	ys, _ := b.Repeat(y)
	xys, _ := b.Concat(x, ys)
	f, _ := b.Alternate(xys, z)

	tbl, accept, err := flatten.Flatten(f)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, err := dfa.Determinize(tbl, accept)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m := d.Minimize()

	fmt.Println(d.Alphabet())
	fmt.Println(d.AcceptsString("xyy"), d.AcceptsString("z"), d.AcceptsString("zz"))
	fmt.Println(m.Len(), m.IsComplete())
	// Output:
	// [x y z]
	// true true false
	// 4 true
}
