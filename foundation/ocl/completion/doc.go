// Package completion generates shell completion scripts for object graphs.
//
// Package: completion
// Title: Shell Completion
// Description: Walks the visible members of a root component to a fixed
//              depth and renders the reachable command paths as bash or
//              fish completion scripts. Callables contribute their flag
//              names, sequences their indexes and mappings their keys.
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Usage:
//
//	tool -- --completion > ~/.tool-completion
//	source ~/.tool-completion
//
// The fish script is requested with --completion=fish.
package completion
