package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation wraps an invalid option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors wraps a failed neighbor lookup.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option tunes a single BFS call.
type Option func(*config)

type config struct {
	ctx      context.Context
	maxDepth int // 0 means unlimited
	keep     func(from, to string) bool
	visit    func(id string, depth int) bool
	err      error
}

func defaults() config {
	return config{
		ctx:   context.Background(),
		keep:  func(string, string) bool { return true },
		visit: func(string, int) bool { return true },
	}
}

// WithContext lets ctx cancel the walk. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithMaxDepth leaves vertices more than d hops away unvisited.
// d == 0 means no limit; d < 0 makes BFS return ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 0 {
			c.err = fmt.Errorf("%w: negative max depth %d", ErrOptionViolation, d)
			return
		}
		c.maxDepth = d
	}
}

// WithFilterNeighbor skips the edge from→to whenever keep returns false.
func WithFilterNeighbor(keep func(from, to string) bool) Option {
	return func(c *config) {
		if keep != nil {
			c.keep = keep
		}
	}
}

// WithOnVisit calls fn as each vertex is dequeued. Returning false ends the
// walk; the Result then covers what was discovered so far.
func WithOnVisit(fn func(id string, depth int) bool) Option {
	return func(c *config) {
		if fn != nil {
			c.visit = fn
		}
	}
}

// Result holds the vertices a walk discovered.
//
// Order lists visited vertices as they were dequeued. Depth maps every
// discovered vertex, visited or still queued, to its hop distance.
type Result struct {
	Order []string
	Depth map[string]int
}

// Reached reports the hop distance of id, if the walk discovered it.
func (r *Result) Reached(id string) (int, bool) {
	d, ok := r.Depth[id]

	return d, ok
}
