// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w (see builderErrorf).

package builder

import (
	"errors"
	"fmt"
)

// ErrCorpusRead indicates the corpus could not be opened or read.
// The underlying I/O error is wrapped alongside it.
// Usage: if errors.Is(err, ErrCorpusRead) { /* report unreadable source */ }.
var ErrCorpusRead = errors.New("builder: cannot read corpus")

// ErrNilReader indicates FromReader received a nil io.Reader.
var ErrNilReader = errors.New("builder: reader is nil")

// ErrOptionViolation indicates that a WithX(...) option constructor received a
// meaningless value (e.g., WithPairWeight(0)). Such violations panic in the
// option constructor; the sentinel provides the stable message.
var ErrOptionViolation = errors.New("builder: invalid option value")

// Method tokens used as error context prefixes.
const (
	MethodFromFile   = "FromFile"
	MethodFromReader = "FromReader"
	MethodFromTokens = "FromTokens"
)

// builderErrorf wraps sentinel and cause under the given method context:
// "<Method>: <formatted message>: <sentinel>: <cause>".
// Both sentinel and cause remain reachable through errors.Is.
func builderErrorf(method string, sentinel, cause error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	if cause == nil {
		return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
	}

	return fmt.Errorf("%s: %s: %w: %w", method, inner, sentinel, cause)
}
