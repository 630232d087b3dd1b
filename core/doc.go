// Package core provides a small, thread-safe in-memory Graph used to model
// the node networks of package gateway.
//
// The Graph G = (V,E) is undirected and simple:
//
//   - No self-loops (ErrLoopNotAllowed)
//   - At most one edge per vertex pair (ErrMultiEdgeNotAllowed)
//   - Constant-time edge operations via nested maps:
//     adjacency[u][v] = adjacency[v][u] = edgeID
//   - Monotonic Edge.ID generation ("e1", "e2", …)
//   - A single sync.RWMutex guarding vertices, edges and adjacency
//
// Core Methods:
//
//	AddEdge(u, v string) (string, error)      // O(1), adds missing endpoints
//	RemoveEdgeBetween(u, v string) error      // O(1), either order
//	HasVertex(id string) bool                 // O(1)
//	NeighborIDs(id string) ([]string, error)  // O(d·log d), sorted
//	Edges() []*Edge                           // O(E·log E), creation order
//	VertexCount() int
//	Clone() *Graph                            // O(V+E)
//
// Removing an edge never removes its endpoints: an isolated vertex stays in
// the graph with no neighbors.
package core
