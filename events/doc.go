// Package events implements the concrete failure and mitigation events that
// drive a contingency: line/bus short circuits, their clearings, branch
// (line/transformer side) openings, and breaker toggles.
//
// Every type here implements network.Event so it can be scheduled by
// Network.ProvideEvents without network importing this package.
package events
