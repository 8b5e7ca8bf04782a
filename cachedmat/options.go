// SPDX-License-Identifier: MIT

// Package cachedmat: functional configuration for the container.
// Mirrors the conventions of matrix/options.go: Option/Options pair,
// documented defaults, WithX constructors that panic only on programmer
// error, gatherOptions as the single source of zero-value behavior.
package cachedmat

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
)

const panicNilLogger = "cachedmat: WithLogger: logger must be non-nil"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	logger log.Interface // hit/miss signal sink; discard by default
}

// WithLogger routes the cache hit/miss signals of Solve to l at debug level.
// The signal is a side effect only and never part of the return contract.
//
// Inputs:
//   - l: any apex/log Interface (e.g. log.Log, or a Logger with a memory
//     handler in tests).
//
// Errors:
//   - Panics when l is nil (programmer error).
//
// Complexity: O(1).
func WithLogger(l log.Interface) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions resolves defaults, then applies each Option in order.
// The default logger discards everything, keeping the library silent.
func gatherOptions(opts ...Option) Options {
	o := Options{logger: &log.Logger{Handler: discard.New(), Level: log.DebugLevel}}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
