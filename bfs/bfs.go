package bfs

import (
	"fmt"

	"github.com/katalvlaran/burrow/core"
)

type queued struct {
	id    string
	depth int
}

// BFS walks g from start. The returned Result is non-nil whenever the walk
// began, even if it then failed on cancellation or a neighbor lookup.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	res := &Result{Depth: map[string]int{start: 0}}
	queue := []queued{{id: start}}
	for head := 0; head < len(queue); head++ {
		if err := cfg.ctx.Err(); err != nil {
			return res, err
		}
		cur := queue[head]
		res.Order = append(res.Order, cur.id)
		if !cfg.visit(cur.id, cur.depth) {
			return res, nil
		}
		if cfg.maxDepth > 0 && cur.depth == cfg.maxDepth {
			continue
		}

		nbrs, err := g.NeighborIDs(cur.id)
		if err != nil {
			return res, fmt.Errorf("%w: %q: %v", ErrNeighbors, cur.id, err)
		}
		for _, nb := range nbrs {
			if _, seen := res.Depth[nb]; seen || !cfg.keep(cur.id, nb) {
				continue
			}
			res.Depth[nb] = cur.depth + 1
			queue = append(queue, queued{id: nb, depth: cur.depth + 1})
		}
	}

	return res, nil
}
