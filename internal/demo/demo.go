// ============================================================================
// zunder - object graph command lines
// ============================================================================
//
// Package:     demo
// Description: Built-in object graphs for `zunder run`
// License:     MIT
// ============================================================================

package demo

import (
	"sort"

	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/literal"
)

// Targets returns the built-in graphs by name
func Targets() map[string]any {
	return map[string]any{
		"calc":      Calc(),
		"greeter":   GreeterType(),
		"inventory": NewInventory(),
		"colors":    Colors(),
	}
}

// Names returns the target names, sorted
func Names() []string {
	targets := Targets()
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the built-in graph called name
func Lookup(name string) (any, bool) {
	target, ok := Targets()[name]
	return target, ok
}

// Colors is a mapping of color names to their RGB components and aliases
func Colors() literal.Dict {
	return literal.Dict{
		{Key: "red", Value: literal.Dict{{Key: "rgb", Value: literal.Tuple{255, 0, 0}}, {Key: "aliases", Value: []any{"crimson", "scarlet"}}}},
		{Key: "green", Value: literal.Dict{{Key: "rgb", Value: literal.Tuple{0, 128, 0}}, {Key: "aliases", Value: []any{"emerald"}}}},
		{Key: "light-blue", Value: literal.Dict{{Key: "rgb", Value: literal.Tuple{173, 216, 230}}, {Key: "aliases", Value: []any{}}}},
		{Key: 7, Value: "lucky"},
	}
}

// Root groups all built-in graphs under one object
func Root() *component.Object {
	root := component.NewObject("zunder").
		WithDoc("Built-in demonstration graphs.")
	targets := Targets()
	for _, name := range Names() {
		root.Add(name, targets[name])
	}
	return root
}
