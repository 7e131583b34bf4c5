package walk

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Sentinel errors returned by Walk.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("walk: graph is nil")

	// ErrVertexNotFound indicates WithStart named a word absent from the graph.
	ErrVertexNotFound = errors.New("walk: start vertex not found in graph")
)

// StopReason tells why a walk ended.
type StopReason int

const (
	// StopEmptyGraph: the graph has no vertices; nothing was emitted.
	StopEmptyGraph StopReason = iota
	// StopDeadEnd: the last emitted vertex has no outgoing edges.
	StopDeadEnd
	// StopRepeatedEdge: the drawn edge was already traversed; it was not crossed again.
	StopRepeatedEdge
	// StopCancelled: the continue hook returned false.
	StopCancelled
)

// String returns a stable kebab-case name.
func (r StopReason) String() string {
	switch r {
	case StopEmptyGraph:
		return "empty-graph"
	case StopDeadEnd:
		return "dead-end"
	case StopRepeatedEdge:
		return "repeated-edge"
	case StopCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// MarshalText lets encoders print the reason name.
func (r StopReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Step is one crossed edge of a walk.
type Step struct {
	Index  int    `json:"index"  yaml:"index"`
	From   string `json:"from"   yaml:"from"`
	To     string `json:"to"     yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// Result is a finished walk. Path lists emitted vertices in order and
// Steps the edges between them, so len(Steps) == len(Path)-1 whenever
// Path is non-empty.
type Result struct {
	Path   []string   `json:"path"   yaml:"path"`
	Steps  []Step     `json:"steps"  yaml:"steps"`
	Reason StopReason `json:"reason" yaml:"reason"`
}

// String renders the path space-joined, or the empty-graph notice.
func (r Result) String() string {
	if r.Reason == StopEmptyGraph {
		return "Graph is empty!"
	}

	return strings.Join(r.Path, " ")
}

// Option configures Walk.
type Option func(*options)

type options struct {
	rng   *rand.Rand
	cont  func(Step) bool
	start string
}

// WithRand sets the source for the start pick and every edge pick.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("walk: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithSeed makes the walk reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithContinue installs the per-step hook. It runs once for every edge
// about to be crossed, before the target is emitted; returning false
// ends the walk with StopCancelled. Panics on nil.
func WithContinue(fn func(Step) bool) Option {
	if fn == nil {
		panic("walk: WithContinue(nil)")
	}
	return func(o *options) { o.cont = fn }
}

// WithStart fixes the start vertex instead of drawing it at random.
func WithStart(word string) Option {
	return func(o *options) { o.start = word }
}

func newOptions(opts ...Option) options {
	o := options{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
