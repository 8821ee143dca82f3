// Package relax embeds a graph in space by explicit-Euler relaxation.
//
// Every pair of vertices at hop distance d interacts through a force law
// f(r, d), by default the spring r − d, where r is their current separation.
// Relax classifies the pairs once (package distance), then performs a fixed
// number of steps
//
//	acc = Σ_buckets Evaluate(law, d, pairs, pos, cell)
//	pos = pos + dt · acc            (acc × cell⁻¹ with a periodic cell)
//
// and returns the new positions. The caller's matrix is never modified.
//
// With a periodic cell (WithCell) positions are fractional. Displacements are
// wrapped to the minimum image, mapped to Cartesian space for the force, and
// the summed force is mapped back to fractional space before the step.
//
// There is no convergence test: the loop always runs exactly Iterations times.
// Use EdgeLengths or an Observer to judge the outcome.
//
// Two interacting vertices at the same place abort the run with a
// *CoincidentNodesError; a singular cell aborts with ErrSingularCell.
// Disconnected components never interact and are not an error.
package relax
