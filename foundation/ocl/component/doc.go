// Package component describes the values an object graph is made of and
// what the engine may do with each of them.
//
// Package: component
// Title: Component Model and Inspection
// Description: Classifies values into kinds (invocable, callable value,
//              sequence, mapping, leaf), exposes call signatures through
//              Spec, and provides explicit registration (NewFunc, NewType,
//              Object) alongside a reflective Inspector for plain Go values.
// Version: v0.1.0
// Created: 2026-09-08
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-08 v0.1.0: Initial implementation
//
// Registration:
//
//	add := component.MustFunc("add", func(x, y int) int { return x + y },
//		component.WithArgs("x", "y"),
//		component.WithDefault("y", 1))
//
//	root := component.NewObject("calc").
//		Add("add", add).
//		Add("pi", 3.14159)
//
// Plain structs work without registration: exported fields and methods
// become members named in snake_case, or by a `zunder:"name"` tag.
// Method parameters are named arg1..argN unless the receiver implements
// MethodDescriber.
package component
