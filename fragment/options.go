// SPDX-License-Identifier: MIT
// Package: fsm/fragment
//
// options.go: functional options for NewBuilder.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors panic on meaningless inputs; operators never panic.

package fragment

import "github.com/katalvlaran/fsm/state"

// Option customizes a Builder before its first operation.
type Option func(*builderConfig)

// builderConfig aggregates Builder knobs. Passed by value once resolved.
type builderConfig struct {
	arena *state.Arena
}

// WithArena makes the Builder allocate into an existing arena, so fragments
// from several builders sharing it can be composed together.
// Panics on nil.
func WithArena(a *state.Arena) Option {
	if a == nil {
		panic("fragment: WithArena(nil)")
	}

	return func(c *builderConfig) { c.arena = a }
}

// newBuilderConfig applies options in order; a missing arena resolves to a fresh one.
func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.arena == nil {
		cfg.arena = state.NewArena()
	}

	return cfg
}
