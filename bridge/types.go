package bridge

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("bridge: graph is nil")

// Status classifies a bridge-word query.
type Status int

const (
	// StatusFound means at least one bridge word exists.
	StatusFound Status = iota
	// StatusNone means both words exist but nothing bridges them.
	StatusNone
	// StatusMissing means one or both words are not in the graph.
	StatusMissing
)

// String returns a stable lowercase name.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNone:
		return "none"
	case StatusMissing:
		return "missing"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText lets encoders print the status name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of Query. Words follows the discovery order of
// From's outgoing edges and is empty unless Status == StatusFound.
type Result struct {
	From   string   `json:"from"            yaml:"from"`
	To     string   `json:"to"              yaml:"to"`
	Words  []string `json:"words,omitempty" yaml:"words,omitempty"`
	Status Status   `json:"status"          yaml:"status"`
}

// String renders the result for display.
func (r Result) String() string {
	switch r.Status {
	case StatusMissing:
		return "No word1 or word2 in the graph!"
	case StatusNone:
		return fmt.Sprintf("No bridge words from %q to %q!", r.From, r.To)
	default:
		return fmt.Sprintf("The bridge words from %q to %q are: %s.",
			r.From, r.To, strings.Join(r.Words, ", "))
	}
}

// Option configures GenerateText.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand sets the source used to pick among several bridge words.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bridge: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithSeed makes bridge-word choices reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

func newOptions(opts ...Option) options {
	o := options{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
