// Package binding models named integer bindings with the ownership rules the
// demo exercises: immutable bindings never change after initialization, and
// a mutable binding hands out at most one live mutable reference at a time.
//
// The exclusivity rule is enforced at run time by Borrow. Values in this
// package are not safe for concurrent use.
package binding
