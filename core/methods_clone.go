// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so new edges on the clone never reuse an ID.

package core

// Clone returns a deep copy of the Graph: vertices, edges, and adjacency. The source graph is only read.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]string, len(g.adjacency)),
	}
	for id := range g.vertices {
		c.vertices[id] = &Vertex{ID: id}
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
	}
	for from, bucket := range g.adjacency {
		nb := make(map[string]string, len(bucket))
		for to, eid := range bucket {
			nb[to] = eid
		}
		c.adjacency[from] = nb
	}

	return c
}
