// Package exectree assembles the L2-L5 packages (network, identifier, omib,
// eac, trajectory) into a typed node pipeline mirroring the reference
// engine's evaluation tree: a critical-cluster identifier feeds a
// per-candidate evaluator (OMIB -> EAC -> trajectory calculator), whose
// results a selector reduces to the single critical cluster.
//
// Each node declares the IOTypes it consumes and produces; building a Tree
// validates that every node's inputs are satisfied by a preceding node's
// outputs before anything runs. A node that fails or is cancelled stops the
// tree without panicking the caller; an EvaluatorNode instead
// isolates a failure to the single candidate that caused it, per the
// contingency-level error propagation used throughout this package: only a
// node failure unrelated to any specific candidate aborts the whole run.
//
// Report generation (the reference engine's per-node .txt files and PDF
// plots) and the reflection-based JSON node factory are not part of this
// package; it builds and runs trees from Go values, not parsed
// configuration.
package exectree
