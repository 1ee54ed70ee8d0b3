// Package identifier selects candidate critical/non-critical generator
// cluster splits from a post-fault generator set.
//
// Two families share a base candidate-cluster iterator (suffix-slice or
// full-powerset, optionally filtered by minimum cluster power):
//
//   - threshold-based identifiers rank generators by a per-generator
//     criterion and keep every generator whose |criterion| exceeds a
//     fraction of the maximum (Acceleration, Composite, Constrained);
//   - gap-based identifiers rank generators by angle variation and split
//     at the widest gap between neighbours in that ordering (Trajectory,
//     DuringFaultTrajectory).
package identifier
