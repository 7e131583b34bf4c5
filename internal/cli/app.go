// Package cli wires the wordgraph commands: configuration, logging, corpus
// loading, output encoding and the query packages behind them.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/config"
	"github.com/katalvlaran/wordgraph/internal/logging"
	"github.com/katalvlaran/wordgraph/internal/render"
)

// Output formats for query results.
const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

var (
	// ErrNoCorpus is returned by commands that need a graph when no corpus
	// file was configured.
	ErrNoCorpus = errors.New("cli: no corpus file given (use --corpus)")
	// ErrBadOutput rejects an unknown --output value.
	ErrBadOutput = errors.New("cli: output must be text, yaml or json")
)

// App carries process-wide collaborators and the state resolved before a
// command runs.
type App struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	home   string
	runner render.Runner

	loader  *config.Loader
	cfgFile string
	format  string

	cfg      config.Config
	log      *slog.Logger
	renderer *render.Renderer
	rng      *rand.Rand
	lines    *bufio.Scanner
}

// Option configures an App.
type Option func(*App)

// WithFS sets the filesystem for config, corpus and output files.
func WithFS(fs afero.Fs) Option { return func(a *App) { a.fs = fs } }

// WithStdio replaces the standard streams.
func WithStdio(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) { a.stdin, a.stdout, a.stderr = in, out, errOut }
}

// WithHome sets the directory searched for .wordgraph/config.yaml.
// Empty disables the lookup.
func WithHome(home string) Option { return func(a *App) { a.home = home } }

// WithRunner replaces the Graphviz command runner.
func WithRunner(r render.Runner) Option { return func(a *App) { a.runner = r } }

// NewApp returns an App bound to the real OS unless overridden.
func NewApp(opts ...Option) *App {
	home, _ := os.UserHomeDir()
	a := &App{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		home:   home,
		runner: render.ExecRunner{},
		format: outputText,
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.loader = config.NewLoader(a.fs, a.home)

	return a
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, opts ...Option) int {
	app := NewApp(opts...)
	cmd := NewCmdRoot(app)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}

// setup resolves configuration and builds the logger, renderer and RNG.
func (a *App) setup() error {
	switch a.format {
	case outputText, outputYAML, outputJSON:
	default:
		return fmt.Errorf("%w: %q", ErrBadOutput, a.format)
	}

	cfg, err := a.loader.Load(a.cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New(a.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	if used := a.loader.FileUsed(); used != "" {
		log.Debug("config loaded", "file", used)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a.cfg = cfg
	a.log = log
	a.rng = rand.New(rand.NewSource(seed))
	a.renderer = render.New(a.fs,
		render.WithDir(cfg.OutputDir),
		render.WithImages(cfg.Render.Enabled),
		render.WithBinary(cfg.Render.Binary),
		render.WithFormat(cfg.Render.Format),
		render.WithRunner(a.runner),
		render.WithLogger(log),
	)
	a.lines = bufio.NewScanner(a.stdin)

	return nil
}

// loadGraph builds the graph of the configured corpus file.
func (a *App) loadGraph() (*core.Graph, error) {
	if a.cfg.Corpus == "" {
		return nil, ErrNoCorpus
	}

	return builder.FromFile(a.cfg.Corpus, builder.WithFS(a.fs), builder.WithLogger(a.log))
}

// emit writes one query result in the selected output format.
func (a *App) emit(v fmt.Stringer) error {
	switch a.format {
	case outputYAML:
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputJSON:
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		_, err := fmt.Fprintln(a.stdout, v.String())
		return err
	}
}

// notef prints human-oriented progress; structured formats stay clean.
func (a *App) notef(format string, args ...any) {
	if a.format == outputText {
		fmt.Fprintf(a.stdout, format, args...)
	}
}

// readLine returns the next stdin line; false at end of input.
func (a *App) readLine() (string, bool) {
	if !a.lines.Scan() {
		return "", false
	}

	return strings.TrimRight(a.lines.Text(), "\r"), true
}
