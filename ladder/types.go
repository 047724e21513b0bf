// Package ladder provides tunable options, the Provider contract, and error
// definitions for word-ladder search.
package ladder

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for ladder search.
var (
	// ErrProviderNil is returned if a nil Provider is passed.
	ErrProviderNil = errors.New("ladder: provider is nil")

	// ErrEmptyWord is returned when the start or target word is empty.
	ErrEmptyWord = errors.New("ladder: word is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")

	// ErrNeighbors wraps any failure reported by the Provider.
	ErrNeighbors = errors.New("ladder: neighbor lookup error")
)

// Provider returns the words one edit away from word.
//
// With sameLengthOnly set, only single-letter substitutions are reported;
// otherwise single-letter insertions and deletions are included as well.
// The result must not contain word itself and its order must be
// deterministic: Search uses it as the tie-break among equal-length ladders.
type Provider interface {
	DistanceOne(word string, sameLengthOnly bool) ([]string, error)
}

// ProviderFunc adapts an ordinary function to the Provider interface.
type ProviderFunc func(word string, sameLengthOnly bool) ([]string, error)

// DistanceOne calls f(word, sameLengthOnly).
func (f ProviderFunc) DistanceOne(word string, sameLengthOnly bool) ([]string, error) {
	return f(word, sameLengthOnly)
}

// Option configures Search behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per
	// dequeued node.
	Ctx context.Context

	// MaxDepth, if > 0, stops creating nodes deeper than this many edges.
	MaxDepth int

	// SameLengthOnly restricts the Provider to substitutions. Default true.
	SameLengthOnly bool

	// OnEnqueue is called when a word is first discovered.
	OnEnqueue func(word string, depth int)

	// OnDequeue is called when a word leaves the queue, including words
	// at MaxDepth that are not expanded.
	OnDequeue func(word string, depth int)

	// OnExpand is called immediately before a word is passed to the Provider.
	OnExpand func(word string, depth int)

	// FilterNeighbor can skip candidate edges by returning false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// same-length neighbors, no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxDepth:       0,
		SameLengthOnly: true,
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnExpand:       func(string, int) {},
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the ladder to at most d steps.
//
//	d > 0: limit to d steps
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithAnyLength lets the ladder grow or shrink by one letter per step.
func WithAnyLength() Option {
	return func(o *Options) { o.SameLengthOnly = false }
}

// WithOnEnqueue registers a callback to run when a word is discovered.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a word leaves the queue.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnExpand registers a callback to run before a word's neighbors are
// requested from the Provider.
func WithOnExpand(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of one Search.
//   - Path: words from start to target inclusive, nil when not found.
//   - Tree: the search tree built while looking for target.
//   - Expanded: number of nodes passed to the Provider. Nodes dequeued at
//     MaxDepth are not counted.
//   - Visited: number of distinct words discovered, start included.
type Result struct {
	Path     []string
	Tree     *Tree
	Expanded int
	Visited  int
}

// Found reports whether a ladder was found.
func (r *Result) Found() bool { return r != nil && r.Path != nil }

// Len returns the number of steps in the ladder, or -1 when none was found.
func (r *Result) Len() int {
	if !r.Found() {
		return -1
	}
	return len(r.Path) - 1
}
