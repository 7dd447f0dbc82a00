// Package scenario defines the format-agnostic model of a demo run: the
// bindings to create and the ordered steps to apply to them. Loaders (such as
// the HCL loader) produce a Scenario; the engine executes it.
package scenario
