// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for dense ingestion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal) that resolves effective settings.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Scope note: only FromGeneral is configurable. The core storage semantics
// (growth on out-of-range Set, explicit-zero preservation through text
// round-trips) are part of the format contract and carry no switches.

package sparse

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultKeepZeros controls whether dense ingestion stores cells whose
	// value is exactly 0. false ⇒ zeros stay absent and the result is as
	// sparse as the input allows.
	DefaultKeepZeros = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	keepZeros bool // DefaultKeepZeros
}

// WithKeepZeros makes dense ingestion store every cell, zeros included, as
// explicit zero entries. Useful when the explicit-zero positions of a
// serialized matrix must be reconstructed from dense data.
// Complexity: O(1).
func WithKeepZeros() Option {
	return func(o *Options) { o.keepZeros = true }
}

// gatherOptions applies setters over the documented defaults and returns the
// effective configuration. Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{keepZeros: DefaultKeepZeros}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
