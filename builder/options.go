// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     The From* entry points themselves never panic.

package builder

import (
	"log/slog"

	"github.com/spf13/afero"
)

// BuilderOption customizes a build by mutating a builderConfig before the
// corpus is read.
type BuilderOption func(*builderConfig)

// WithFS sets the filesystem FromFile reads from. Tests typically pass
// afero.NewMemMapFs(). Panics on nil.
func WithFS(fs afero.Fs) BuilderOption {
	if fs == nil {
		panic("builder: WithFS(nil)")
	}
	return func(c *builderConfig) {
		c.fs = fs
	}
}

// WithLogger attaches a structured logger for build diagnostics.
// Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithPairWeight sets the weight added for each observed adjacent pair.
// The default of 1 makes edge weights equal raw occurrence counts.
// Panics on w ≤ 0.
func WithPairWeight(w int64) BuilderOption {
	if w <= 0 {
		panic(ErrOptionViolation.Error())
	}
	return func(c *builderConfig) {
		c.pairWeight = w
	}
}
