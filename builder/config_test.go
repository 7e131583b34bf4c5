// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
)

// TestConfigDefaults verifies the defaults documented in config.go.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if _, ok := cfg.fs.(*afero.OsFs); !ok {
		t.Errorf("default fs: expected *afero.OsFs, got %T", cfg.fs)
	}
	if cfg.logger == nil {
		t.Fatal("default logger must not be nil")
	}
	if cfg.pairWeight != defaultPairWeight {
		t.Errorf("default pairWeight: expected %d, got %d", defaultPairWeight, cfg.pairWeight)
	}
}

// TestOptionsApplyInOrder verifies that later options override earlier ones.
func TestOptionsApplyInOrder(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := newBuilderConfig(
		WithPairWeight(2),
		WithFS(mem),
		WithLogger(log),
		WithPairWeight(5),
	)
	if cfg.fs != mem {
		t.Errorf("WithFS: filesystem not applied")
	}
	if cfg.logger != log {
		t.Errorf("WithLogger: logger not applied")
	}
	if cfg.pairWeight != 5 {
		t.Errorf("WithPairWeight override: expected 5, got %d", cfg.pairWeight)
	}
}

// TestOptionPanics verifies that meaningless option values panic with a
// stable message.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"nil fs":      func() { WithFS(nil) },
		"nil logger":  func() { WithLogger(nil) },
		"zero weight": func() { WithPairWeight(0) },
		"neg weight":  func() { WithPairWeight(-3) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

// TestBuilderErrorf verifies both the sentinel and the cause stay reachable.
func TestBuilderErrorf(t *testing.T) {
	t.Parallel()

	cause := afero.ErrFileNotFound
	err := builderErrorf(MethodFromFile, ErrCorpusRead, cause, "open %q", "x.txt")
	if !errors.Is(err, ErrCorpusRead) || !errors.Is(err, cause) {
		t.Fatalf("builderErrorf lost a wrapped error: %v", err)
	}
	if got := builderErrorf(MethodFromReader, ErrNilReader, nil, "reader"); !errors.Is(got, ErrNilReader) {
		t.Fatalf("builderErrorf without cause: %v", got)
	}
}
