// Package binder turns the tokens of one traversal step into the argument
// values of a callable.
//
// Package: binder
// Title: Call Binding
// Description: Classifies flags against a call signature, fills ordered
//              arguments by name, then by position, then from defaults,
//              parses every raw value with the signature's parse functions
//              or the literal parser, and reports the unconsumed tokens
//              together with whether the call could have taken more.
// Version: v0.1.0
// Created: 2026-09-11
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-11 v0.1.0: Initial implementation
//
// Usage:
//
//	bound, err := binder.Bind(spec, []string{"--alpha", "10", "extra"}, nil)
//	// bound.Positional == []any{10, <default of beta>}
//	// bound.Remaining  == []string{"extra"}
//	// bound.Capacity   == true
//
// Errors are *zderror.Error values with a binding code: MISSING_ARGUMENT,
// UNEXPECTED_FLAG, MISSING_FLAG, AMBIGUOUS_FLAG or INVALID_VALUE.
package binder
