// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • fs     = afero.NewOsFs()   (FromFile reads the real filesystem)
//   • logger = discard           (library code is silent unless asked)
//   • weight = 1                 (one observation per adjacent pair)

package builder

import (
	"io"
	"log/slog"

	"github.com/spf13/afero"
)

// builderConfig aggregates all knobs used by the From* entry points.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// Filesystem used by FromFile.
	fs afero.Fs
	// Structured logger for build diagnostics.
	logger *slog.Logger
	// Weight added per observed adjacency.
	pairWeight int64
}

const defaultPairWeight = int64(1)

// newBuilderConfig constructs a config with defaults and applies all
// options in order; last wins.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		fs:         afero.NewOsFs(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		pairWeight: defaultPairWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
