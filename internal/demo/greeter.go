// ============================================================================
// zunder - object graph command lines
// ============================================================================
//
// Package:     demo
// Description: Greeter constructor and an inventory struct reached by
//              reflection
// License:     MIT
// ============================================================================

package demo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/msto63/zunder/foundation/ocl/component"
)

// Greeter says hello
type Greeter struct {
	Name        string
	Punctuation string
}

// GreeterType returns the registered Greeter constructor. Its arguments are
// flags: greeter --name Ann greet
func GreeterType() *component.Func {
	return component.MustType("Greeter", func(name, punctuation string) *Greeter {
		return &Greeter{Name: name, Punctuation: punctuation}
	},
		component.WithArgs("name", "punctuation"),
		component.WithDefault("name", "world"),
		component.WithDefault("punctuation", "!"),
		component.WithDoc("Create a greeter.\n\nArgs:\n  name: Who to greet.\n  punctuation: Ends every greeting."))
}

// Greet returns the greeting repeated times times
func (g *Greeter) Greet(times int) string {
	if times < 1 {
		times = 1
	}
	parts := make([]string, times)
	for i := range parts {
		parts[i] = "Hello " + g.Name + g.Punctuation
	}
	return strings.Join(parts, " ")
}

// Shout returns the greeting in upper case
func (g *Greeter) Shout() string {
	return strings.ToUpper(g.Greet(1))
}

// DescribeMethod names method parameters
func (g *Greeter) DescribeMethod(method string) []component.Option {
	switch method {
	case "Greet":
		return []component.Option{
			component.WithArgs("times"),
			component.WithDefault("times", 1),
			component.WithDoc("Greet times times."),
		}
	case "Shout":
		return []component.Option{component.WithDoc("Greet loudly.")}
	}
	return nil
}

// Inventory tracks stock per item
type Inventory struct {
	Items    map[string]int
	Location string
	Tags     []string
	Notes    string `zunder:"_notes"`
}

// NewInventory returns a stocked inventory
func NewInventory() *Inventory {
	return &Inventory{
		Items:    map[string]int{"apple": 3, "pear": 0, "plum": 12},
		Location: "shed",
		Tags:     []string{"fruit", "seasonal"},
		Notes:    "counted on monday",
	}
}

// Total returns the number of units in stock
func (i *Inventory) Total() int {
	n := 0
	for _, v := range i.Items {
		n += v
	}
	return n
}

// Restock adds amount units of item and returns the new count
func (i *Inventory) Restock(item string, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("cannot restock %d units of %s", amount, item)
	}
	i.Items[item] += amount
	return i.Items[item], nil
}

// Missing lists items without stock, sorted
func (i *Inventory) Missing() []string {
	var out []string
	for item, n := range i.Items {
		if n == 0 {
			out = append(out, item)
		}
	}
	sort.Strings(out)
	return out
}

// DescribeMethod names method parameters
func (i *Inventory) DescribeMethod(method string) []component.Option {
	switch method {
	case "Restock":
		return []component.Option{
			component.WithArgs("item", "amount"),
			component.WithDefault("amount", 1),
			component.WithDoc("Add stock for an item."),
		}
	case "Total":
		return []component.Option{component.WithDoc("Units in stock.")}
	case "Missing":
		return []component.Option{component.WithDoc("Items without stock.")}
	}
	return nil
}
