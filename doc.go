// Package deeac is a transient-stability screening engine: given a network
// topology, an event sequence (fault plus any protection/operator response),
// and a set of dynamic generators, it identifies candidate critical clusters,
// reduces each to a one-machine-infinite-bus equivalent, and applies the
// equal-area criterion to estimate whether the post-fault swing stays stable
// and, if so, by how much margin and for how long the fault can be sustained.
//
// The pipeline is organized the way the source studies organize it:
//
//	network/   — bus/branch topology, per-state (pre/during/post-fault)
//	            simplification and admittance assembly
//	events/    — failure and mitigation events applied to a network
//	cmatrix/   — complex dense matrix algebra backing admittance reduction
//	trajectory/ — per-generator rotor-angle trajectory calculators (Taylor,
//	            during-fault, post-fault)
//	omib/      — one-machine-infinite-bus reduction (ZOOMIB/COOMIB/DOMIB)
//	eac/       — equal-area criterion angle sweep over an OMIB model
//	identifier/ — critical-cluster candidate generation (acceleration,
//	            constrained, threshold, trajectory-based)
//	exectree/  — typed execution-tree nodes wiring the above into a pipeline,
//	            with per-candidate error isolation
//	eeac/      — top-level orchestration and contingency pre-classification
//
// eeac.Service.Run assembles one execution tree against one network and
// drives it to a critical-cluster result; eeac.Classify pre-screens a
// contingency before that run is worth paying for at all.
package deeac
