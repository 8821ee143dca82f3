// Package core provides the thread-safe, undirected in-memory Graph consumed by
// the distance classifier and the relaxation engine.
//
// The Graph G = (V,E) supports:
//
//   - Insertion-ordered vertices: Vertex.Index is the row of the vertex in every
//     position/force matrix, so layouts are reproducible.
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops). Neither changes
//     hop distances; NeighborIDs collapses them to simple connectivity.
//   - Constant-time edge operations via nested maps:
//     adjacency[u][v][edgeID] = struct{}{} (mirrored for u != v)
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	AddVertex(id string) error                    // O(1)
//	HasVertex(id string) bool                     // O(1)
//	VertexIndex(id string) (int, error)           // O(1)
//	Vertices() []string                           // O(V), insertion order
//	AddEdge(from, to string) (string, error)      // O(1)
//	HasEdge(from, to string) bool                 // O(1)
//	Edges() []*Edge                               // O(E), insertion order
//	NeighborIDs(id string) ([]string, error)      // O(k log k), Index order
//	Degree(id string) (int, error)                // O(deg)
//
// Example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("A", "B")
//	_, _ = g.AddEdge("B", "C")
//	idx, _ := g.VertexIndex("C") // 2
package core
