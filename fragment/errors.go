// SPDX-License-Identifier: MIT
// Package: fsm/fragment
//
// errors.go: sentinel errors for the fragment package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (operator name, offending symbol, arena id) is attached with %w.

package fragment

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol indicates Literal received the empty string, the reserved
// Epsilon marker, or something other than exactly one code point.
// Non-recoverable for that call; retry with a valid symbol.
var ErrInvalidSymbol = errors.New("fragment: invalid symbol")

// ErrForeignFragment indicates an operand was not built by this Builder's arena
// (or is the zero Fragment).
var ErrForeignFragment = errors.New("fragment: fragment belongs to another arena")

// ErrSharedOperand indicates the same fragment (or one already composed into
// another operand) was passed twice to a single operator call.
var ErrSharedOperand = errors.New("fragment: operand used more than once")

// Operator names used as error context.
const (
	MethodLiteral     = "Literal"
	MethodConcatPair  = "ConcatPair"
	MethodConcat      = "Concat"
	MethodAlternate   = "Alternate"
	MethodRepeat      = "Repeat"
	MethodPlus        = "Plus"
	MethodOptional    = "Optional"
	MethodEpsilonLink = "EpsilonLink"
)

// fragmentErrorf prefixes err with the operator name and an optional detail,
// keeping err reachable through errors.Is.
func fragmentErrorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %w: %s", method, err, fmt.Sprintf(format, args...))
}
