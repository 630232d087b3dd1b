// File: methods_adjacent.go
// Role: Neighborhood API.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.

package core

import "sort"

// NeighborIDs returns the IDs reachable from id over one edge, sorted
// lexicographically ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(bucket))
	for to := range bucket {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}
