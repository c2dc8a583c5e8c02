// SPDX-License-Identifier: MIT
// Package dfa defines the deterministic automaton produced by subset
// construction, its canonical state keys, options and errors.
package dfa

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/fsm/state"
)

// Sentinel errors for determinization.
var (
	// ErrNilTable is returned when Determinize receives a nil table.
	ErrNilTable = errors.New("dfa: table is nil")

	// ErrUnknownAccept is returned when the accept ID is not a key of the table.
	ErrUnknownAccept = errors.New("dfa: accept state not in table")

	// ErrStateLimit is returned when subset construction exceeds WithMaxStates.
	ErrStateLimit = errors.New("dfa: state limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfa: invalid option supplied")
)

// Key is the canonical identity of a DFA state: the sorted, deduplicated NFA
// state IDs it stands for, comma-joined ("0,3,7"). Two DFA states with the
// same NFA set have the same Key. The empty set encodes as Dead.
type Key string

// Dead is the Key of the empty NFA set, the reject sink added by Complete.
const Dead Key = ""

// String renders the key as a set literal, e.g. "{0,3,7}".
func (k Key) String() string { return "{" + string(k) + "}" }

// Canonical sorts and deduplicates ids and returns them with their Key.
// The input slice is not modified.
func Canonical(ids []state.StateID) ([]state.StateID, Key) {
	out := slices.Clone(ids)
	slices.Sort(out)
	out = slices.Compact(out)

	var sb strings.Builder
	for i, id := range out {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(id)))
	}

	return out, Key(sb.String())
}

// Option configures Determinize.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	maxStates int
	err       error
}

func defaultOptions() options {
	return options{logger: slog.Default()}
}

// WithLogger routes debug events (one per discovered DFA state) to l.
// A nil logger keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxStates aborts subset construction with ErrStateLimit once more than
// n DFA states would be created.
//
//	n > 0: limit to n states
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxStates = n
	}
}

// DFA is a deterministic transition table keyed by canonical state-sets.
//
// Missing transitions reject. A DFA is immutable once returned and safe for
// concurrent readers; Complete and Minimize return new values.
type DFA struct {
	start     Key
	alphabet  []string
	order     []Key
	sets      map[Key][]state.StateID
	trans     map[Key]map[string]Key
	accepting map[Key]bool
}

// newDFA allocates an empty DFA over alphabet.
func newDFA(alphabet []string) *DFA {
	return &DFA{
		alphabet:  alphabet,
		sets:      make(map[Key][]state.StateID),
		trans:     make(map[Key]map[string]Key),
		accepting: make(map[Key]bool),
	}
}

// add registers a new state; callers check it is unseen.
func (d *DFA) add(k Key, set []state.StateID, accepting bool) {
	d.order = append(d.order, k)
	d.sets[k] = set
	d.trans[k] = make(map[string]Key, len(d.alphabet))
	if accepting {
		d.accepting[k] = true
	}
}

// Start returns the start state's key.
func (d *DFA) Start() Key { return d.start }

// Alphabet returns the input symbols, sorted.
func (d *DFA) Alphabet() []string { return slices.Clone(d.alphabet) }

// States returns every state key in discovery order; the start state is first.
func (d *DFA) States() []Key { return slices.Clone(d.order) }

// Len returns the number of states.
func (d *DFA) Len() int { return len(d.order) }

// Has reports whether k is a state of d.
func (d *DFA) Has(k Key) bool {
	_, ok := d.trans[k]
	return ok
}

// Set returns the NFA state IDs behind k, sorted.
func (d *DFA) Set(k Key) []state.StateID { return slices.Clone(d.sets[k]) }

// Next returns the successor of k on symbol.
func (d *DFA) Next(k Key, symbol string) (Key, bool) {
	next, ok := d.trans[k][symbol]
	return next, ok
}

// Transitions returns a copy of k's outgoing edges.
func (d *DFA) Transitions(k Key) map[string]Key {
	out := make(map[string]Key, len(d.trans[k]))
	for sym, next := range d.trans[k] {
		out[sym] = next
	}

	return out
}

// IsAccepting reports whether k is an accepting state.
func (d *DFA) IsAccepting(k Key) bool { return d.accepting[k] }

// Accepting returns the accepting keys in discovery order.
func (d *DFA) Accepting() []Key {
	var out []Key
	for _, k := range d.order {
		if d.accepting[k] {
			out = append(out, k)
		}
	}

	return out
}

// IsComplete reports whether every state has a transition on every symbol.
func (d *DFA) IsComplete() bool {
	for _, k := range d.order {
		if len(d.trans[k]) != len(d.alphabet) {
			return false
		}
	}

	return true
}

// Accepts runs input through the DFA. Unknown symbols and missing transitions reject.
func (d *DFA) Accepts(input []string) bool {
	cur := d.start
	for _, sym := range input {
		next, ok := d.trans[cur][sym]
		if !ok {
			return false
		}
		cur = next
	}

	return d.accepting[cur]
}

// AcceptsString runs s, split into single code points, through the DFA.
func (d *DFA) AcceptsString(s string) bool {
	input := make([]string, 0, len(s))
	for _, r := range s {
		input = append(input, string(r))
	}

	return d.Accepts(input)
}
