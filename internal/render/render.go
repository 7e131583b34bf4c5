// Package render persists exported graphs and walk transcripts, and turns
// DOT files into images with the Graphviz command-line tool.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Well-known output names.
const (
	GraphFile        = "graph.dot"
	ShortestPathFile = "shortest_path.dot"
	RandomWalkFile   = "random_walk.txt"
)

var (
	// ErrWrite wraps failures to create or write an output file.
	ErrWrite = errors.New("render: cannot write output")
	// ErrRender wraps a failed Graphviz run.
	ErrRender = errors.New("render: graphviz failed")
)

// Runner executes an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f(ctx, name, args...)
}

// ExecRunner runs commands on the host.
type ExecRunner struct{}

// Run implements Runner with os/exec.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Renderer writes into one output directory.
type Renderer struct {
	fs      afero.Fs
	dir     string
	enabled bool
	binary  string
	format  string
	runner  Runner
	logger  *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDir sets the output directory (default ".").
func WithDir(dir string) Option { return func(r *Renderer) { r.dir = dir } }

// WithImages toggles Graphviz invocation (default on).
func WithImages(enabled bool) Option { return func(r *Renderer) { r.enabled = enabled } }

// WithBinary sets the Graphviz executable (default "dot").
func WithBinary(bin string) Option { return func(r *Renderer) { r.binary = bin } }

// WithFormat sets the image format passed as -T (default "png").
func WithFormat(format string) Option { return func(r *Renderer) { r.format = format } }

// WithRunner replaces the command runner. Panics on nil.
func WithRunner(run Runner) Option {
	if run == nil {
		panic("render: WithRunner(nil)")
	}
	return func(r *Renderer) { r.runner = run }
}

// WithLogger sets the logger for render warnings. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("render: WithLogger(nil)")
	}
	return func(r *Renderer) { r.logger = l }
}

// New returns a Renderer writing through fs.
func New(fs afero.Fs, opts ...Option) *Renderer {
	r := &Renderer{
		fs:      fs,
		dir:     ".",
		enabled: true,
		binary:  "dot",
		format:  "png",
		runner:  ExecRunner{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// SaveText writes content to name inside the output directory and returns
// the written path.
func (r *Renderer) SaveText(name, content string) (string, error) {
	if err := r.fs.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWrite, r.dir, err)
	}
	path := filepath.Join(r.dir, name)
	if err := afero.WriteFile(r.fs, path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	return path, nil
}

// Image runs Graphviz on dotPath and returns the image path, which shares
// the DOT file's base name. Returns "" without running anything when images
// are disabled.
func (r *Renderer) Image(ctx context.Context, dotPath string) (string, error) {
	if !r.enabled {
		return "", nil
	}
	out := strings.TrimSuffix(dotPath, filepath.Ext(dotPath)) + "." + r.format

	msg, err := r.runner.Run(ctx, r.binary, "-T"+r.format, "-o", out, dotPath)
	if err != nil {
		detail := strings.TrimSpace(string(msg))
		if detail != "" {
			return "", fmt.Errorf("%w: %s: %w: %s", ErrRender, r.binary, err, detail)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrRender, r.binary, err)
	}

	return out, nil
}

// Publish saves a DOT document as name and renders it. A failed render is
// logged as a warning and leaves imagePath empty; only a failed write is
// returned as an error.
func (r *Renderer) Publish(ctx context.Context, name, dot string) (dotPath, imagePath string, err error) {
	dotPath, err = r.SaveText(name, dot)
	if err != nil {
		return "", "", err
	}

	imagePath, err = r.Image(ctx, dotPath)
	if err != nil {
		r.logger.Warn("image not generated", "dot", dotPath, "err", err)
		return dotPath, "", nil
	}
	if imagePath != "" {
		r.logger.Info("image generated", "path", imagePath)
	}

	return dotPath, imagePath, nil
}
