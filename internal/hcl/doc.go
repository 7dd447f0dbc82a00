// Package hcl provides the HCL implementation of scenario.Loader. It is
// responsible for file discovery, parsing, and translating binding and step
// blocks into the format-agnostic scenario model.
package hcl
