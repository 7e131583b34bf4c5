package dot

import "errors"

// ErrNilGraph indicates that a nil *core.Graph was passed to Export.
var ErrNilGraph = errors.New("dot: graph is nil")

const (
	defaultName           = "G"
	defaultHighlightColor = "red"
	highlightPenWidth     = "2.0"
)

// Option configures Export.
type Option func(*options)

type options struct {
	name      string
	highlight []string
	color     string
}

// WithName sets the digraph identifier. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("dot: WithName(\"\")")
	}
	return func(o *options) { o.name = name }
}

// WithHighlight marks the edges between consecutive path entries.
// Pairs that are not edges of the graph are ignored; a path shorter than
// two entries highlights nothing.
func WithHighlight(path []string) Option {
	return func(o *options) { o.highlight = path }
}

// WithHighlightColor overrides the highlight color. Panics on empty input.
func WithHighlightColor(color string) Option {
	if color == "" {
		panic("dot: WithHighlightColor(\"\")")
	}
	return func(o *options) { o.color = color }
}

func newOptions(opts ...Option) options {
	o := options{name: defaultName, color: defaultHighlightColor}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
