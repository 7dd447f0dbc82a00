// Package engine executes a scenario. It creates the bindings the scenario
// declares and then applies each step, in order, through the handler the
// registry holds for its kind. Execution is single-threaded and stops at the
// first failing step.
package engine
