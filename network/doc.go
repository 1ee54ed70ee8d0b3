// Package network models the electrical primitives (L0) and the network
// topology and simplification pipeline (L1) of the Extended Equal Area
// Criterion engine.
//
// It owns buses, branches (lines and transformers), loads, capacitor banks
// and generators, and knows how to:
//
//   - couple buses joined by closed breakers into merged buses,
//   - inject the effect of failure/mitigation events (see package events),
//   - insert synthetic generator-internal-voltage buses,
//   - prune disconnected islands, keeping the slack-bus component,
//   - produce a SimplifiedNetwork per NetworkState (pre/during/post-fault)
//     with buses sorted so generator-internal-voltage buses trail the
//     admittance matrix (a precondition for Kron reduction, see cmatrix).
//
// Bus/Branch/Bus and Bus/Generator references avoid ownership cycles: the
// Network owns Buses by name; Buses hold their attached Generators by
// pointer and their Loads/Banks by value; Branches are owned by the Network
// as a flat slice and referenced from each endpoint Bus by index
// (BranchIndices), never by pointer cycle.
package network
