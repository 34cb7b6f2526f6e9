// Package engine consumes command-line tokens against a live object graph.
//
// Package: engine
// Title: Traversal Engine
// Description: Runs the token-consuming state machine. Each step classifies
//              the current component and applies the first behavior that
//              can consume tokens: call an invocable, index a sequence, look
//              up a mapping key, access a member, or call a callable value.
//              Every step is recorded on a trace.Trace. Binding and
//              traversal failures end the run as an error element on the
//              trace; errors returned by invoked targets end it as a Go
//              error, unchanged.
// Version: v0.1.0
// Created: 2026-09-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-15 v0.1.0: Initial implementation
//
// Separators:
//
// A separator token (default "-") ends consumption for the current step, so
// "display hello - upper" calls display with its default second argument
// and then takes the upper member of the result. The separator is set with
// the global option --separator.
//
// Global options follow the final isolated "--":
//
//	tool greet --name Ann -- --trace
package engine
