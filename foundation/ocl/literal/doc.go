// Package literal converts raw command-line tokens into typed values.
//
// Package: literal
// Title: Literal Value Parser
// Description: A hand-written lexer and recursive-descent parser for the
//              literal grammar accepted on the command line: booleans,
//              None, integers (arbitrary precision), floats, quoted strings,
//              lists, tuples, dicts and sets, with bare words read as
//              strings. Parsing never fails: a token that violates the
//              grammar is returned unchanged as a string.
// Version: v0.1.0
// Created: 2026-09-04
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-04 v0.1.0: Initial implementation
//
// Value mapping:
//
//	True, False        bool
//	None               nil
//	42, 0x2a, 1_000    int (*big.Int beyond 64 bits)
//	1.5, .5, 1e5       float64
//	'a', "b"           string
//	[1, 2]             []any
//	(1, 2), 1, 2       Tuple
//	{a: 1}             Dict
//	{1, 2}, set()      Set
//	hello              string (bare word)
//
// Usage:
//
//	v := literal.Parse("[1, two, 3.0]") // []any{1, "two", 3.0}
//	v = literal.Parse("1+1")            // "1+1"
//
//	p := literal.New(literal.Options{CommentHash: false})
//	v, err := p.Eval("0#x")             // err is *SyntaxError
package literal
