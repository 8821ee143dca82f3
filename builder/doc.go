// Package builder assembles deterministic core.Graph fixtures for relaxation runs.
//
// The package centres on one orchestrator and a handful of topology factories:
//
//   - BuildGraph(gopts, bopts, cons...) creates a graph and applies constructors in order.
//   - PlatonicSolid(name, withCenter): the five Platonic shells, optional hub "Center".
//   - Cycle(n), Path(n), Complete(n), Grid(rows, cols).
//   - EdgeList(pairs) and Vertices(ids...) for hand-written topologies.
//
// Vertex IDs come from a BuilderOption-selected scheme (WithIDScheme, WithPrefix);
// the default renders indices as decimal strings. Vertices are always added in
// ascending index order, so the row of a vertex in a position matrix is known
// up front.
//
// Errors are sentinel values (ErrTooFewVertices, ErrOptionViolation,
// ErrConstructFailed) wrapped with method context; branch with errors.Is.
package builder
