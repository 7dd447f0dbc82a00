// Package registry maps step kinds used in scenarios (e.g. "print",
// "add10") to the Go handlers that implement them.
//
// Modules contribute handlers through the Module interface. Before a run the
// registry is checked against the scenario so that a step with no handler is
// reported at startup rather than halfway through execution.
package registry
