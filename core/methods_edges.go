// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdgeBetween/Edges.
// Determinism:
//   - Edges() returns edges sorted by numeric Edge.ID (creation order).
//   - nextEdgeIDLocked() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", …).
const edgeIDPrefix = 'e'

// AddEdge links u and v, adding missing endpoints, and returns the edge ID.
//
// Errors:
//   - ErrEmptyVertexID: either endpoint is "".
//   - ErrLoopNotAllowed: u == v.
//   - ErrMultiEdgeNotAllowed: u and v are already linked, in either order.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	if u == v {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)
	if _, dup := g.adjacency[u][v]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := g.nextEdgeIDLocked()
	g.edges[eid] = &Edge{ID: eid, From: u, To: v}
	g.adjacency[u][v] = eid
	g.adjacency[v][u] = eid

	return eid, nil
}

// RemoveEdgeBetween deletes the edge linking u and v, given in either order.
// Returns ErrEdgeNotFound if no such edge exists. Vertices are kept.
// Complexity: O(1).
func (g *Graph) RemoveEdgeBetween(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	eid, ok := g.adjacency[u][v]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return nil
}

// Edges returns all edges in creation order.
// Returned pointers are live catalog entries; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// nextEdgeIDLocked returns a new unique textual edge ID. Caller holds mu.
func (g *Graph) nextEdgeIDLocked() string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}

// edgeSeq extracts the sequence number of an "e<N>" edge ID.
func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[1:], 10, 64)

	return n
}
