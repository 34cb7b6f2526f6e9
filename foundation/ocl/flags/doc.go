// Package flags separates command-line tokens into named flags, positional
// values and leftovers, and parses the global options that follow the
// final isolated "--".
//
// Package: flags
// Title: Flag Classifier
// Description: Recognizes flag tokens, matches them against the names a
//              callable accepts (exact, "no" prefix for booleans, unique
//              first letter), and hands unmatched flags back to the caller
//              so a later step can consume them.
// Version: v0.1.0
// Created: 2026-09-06
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-06 v0.1.0: Initial implementation
package flags
