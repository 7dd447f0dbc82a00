// Package funcs holds the free helper functions the demo calls. They operate
// on fixed-width int32 values and report overflow instead of wrapping.
package funcs
