// Package bfs walks a core.Graph breadth-first and records the hop distance
// of every vertex it reaches.
//
// Vertices are visited in non-decreasing distance from the start, and
// core.Graph.NeighborIDs hands neighbors back sorted, so the visit order is
// reproducible. Callers shape the walk with options:
//
//   - WithContext:        abort with ctx.Err() once ctx is done.
//   - WithMaxDepth:       do not go further than d hops.
//   - WithFilterNeighbor: treat an edge as absent without touching the graph.
//   - WithOnVisit:        observe each vertex and end the walk early.
//
// Errors:
//
//   - ErrGraphNil            nil graph.
//   - ErrStartVertexNotFound start vertex absent.
//   - ErrOptionViolation     invalid option (negative depth).
//   - ErrNeighbors           neighbor lookup failure.
//   - ctx.Err()              cancellation.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
