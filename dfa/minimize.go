// SPDX-License-Identifier: MIT

package dfa

import (
	"slices"
	"strconv"
	"strings"
)

// clone returns a deep copy of d.
func (d *DFA) clone() *DFA {
	c := newDFA(slices.Clone(d.alphabet))
	c.start = d.start
	for _, k := range d.order {
		c.add(k, slices.Clone(d.sets[k]), d.accepting[k])
		for sym, next := range d.trans[k] {
			c.trans[k][sym] = next
		}
	}

	return c
}

// Complete returns a copy of d in which every state has a transition on every
// alphabet symbol. Missing transitions go to the Dead state, which is added
// (non-accepting, looping on every symbol) only when needed.
func (d *DFA) Complete() *DFA {
	c := d.clone()
	if c.IsComplete() {
		return c
	}
	if !c.Has(Dead) {
		c.add(Dead, nil, false)
	}
	for _, k := range c.order {
		for _, sym := range c.alphabet {
			if _, ok := c.trans[k][sym]; !ok {
				c.trans[k][sym] = Dead
			}
		}
	}

	return c
}

// Minimize returns the minimal complete DFA for d's language using Moore's
// partition refinement: start from {accepting, non-accepting} and split any
// block whose members move, on some symbol, into different blocks, until no
// block splits.
//
// d is completed first. Each final block is represented by its first member in
// discovery order; the block keeps that member's Key and NFA set.
func (d *DFA) Minimize() *DFA {
	c := d.Complete()

	block := make(map[Key]int, c.Len())
	count := 0
	{
		classes := make(map[bool]int, 2)
		for _, k := range c.order {
			acc := c.accepting[k]
			if _, ok := classes[acc]; !ok {
				classes[acc] = len(classes)
			}
			block[k] = classes[acc]
		}
		count = len(classes)
	}

	for {
		next := make(map[Key]int, c.Len())
		index := make(map[string]int)
		for _, k := range c.order {
			sig := c.signature(k, block)
			b, ok := index[sig]
			if !ok {
				b = len(index)
				index[sig] = b
			}
			next[k] = b
		}
		block = next
		if len(index) == count {
			break
		}
		count = len(index)
	}

	rep := make([]Key, count)
	filled := make([]bool, count)
	var repOrder []Key
	for _, k := range c.order {
		b := block[k]
		if !filled[b] {
			filled[b] = true
			rep[b] = k
			repOrder = append(repOrder, k)
		}
	}

	m := newDFA(slices.Clone(c.alphabet))
	m.start = rep[block[c.start]]
	for _, k := range repOrder {
		m.add(k, slices.Clone(c.sets[k]), c.accepting[k])
		for _, sym := range c.alphabet {
			m.trans[k][sym] = rep[block[c.trans[k][sym]]]
		}
	}

	return m
}

// signature encodes k's current block followed by the block of each successor
// in alphabet order. Equal signatures stay in the same block.
func (d *DFA) signature(k Key, block map[Key]int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(block[k]))
	for _, sym := range d.alphabet {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(block[d.trans[k][sym]]))
	}

	return sb.String()
}
