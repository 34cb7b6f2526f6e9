// File: members.go
// Title: Member Grouping
// Description: Sorts the visible members of a component into groups,
//              commands and values, and lists the indexes of sequences.
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package helptext

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/msto63/zunder/foundation/ocl/completion"
	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/literal"
)

// actionGroup is a kind of action offered by a component
type actionGroup struct {
	name    string
	plural  string
	names   []string
	members []any
}

func (g *actionGroup) add(name string, member any) {
	g.names = append(g.names, name)
	g.members = append(g.members, member)
}

func (g *actionGroup) empty() bool {
	return len(g.names) == 0
}

// actions groups what can follow c on the command line
type actions struct {
	groups, commands, values, indexes actionGroup
}

func (a *actions) all() []*actionGroup {
	return []*actionGroup{&a.groups, &a.commands, &a.values, &a.indexes}
}

// possible returns the names of the non-empty groups
func (a *actions) possible() []string {
	var out []string
	for _, g := range a.all() {
		if !g.empty() {
			out = append(out, g.name)
		}
	}
	return out
}

func groupActions(c any, insp component.Inspector, verbose bool) *actions {
	a := &actions{
		groups:   actionGroup{name: "group", plural: "groups"},
		commands: actionGroup{name: "command", plural: "commands"},
		values:   actionGroup{name: "value", plural: "values"},
		indexes:  actionGroup{name: "index", plural: "indexes"},
	}
	for _, m := range completion.VisibleMembers(c, insp, verbose) {
		switch {
		case isCommand(m.Value, insp):
			a.commands.add(m.Name, m.Value)
		case isValue(m.Value):
			a.values.add(m.Name, m.Value)
		default:
			a.groups.add(m.Name, m.Value)
		}
	}
	if insp.Classify(c) == component.KindSequence {
		if n := len(insp.Elements(c)); n > 0 {
			a.indexes.add(indexRange(n), nil)
		}
	}
	return a
}

func indexRange(n int) string {
	if n >= 10 {
		return fmt.Sprintf("0..%d", n-1)
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(i)
	}
	return strings.Join(parts, ", ")
}

func isCommand(v any, insp component.Inspector) bool {
	return insp.Classify(v) == component.KindInvocable
}

// isValue reports whether v prints as a value: primitives and types with
// their own String method
func isValue(v any) bool {
	switch v.(type) {
	case nil, *big.Int, fmt.Stringer, error:
		return true
	case literal.Tuple, literal.Set, literal.Dict, []any:
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// isListOrMap reports whether v is a list or a mapping, but not a tuple or set
func isListOrMap(v any, insp component.Inspector) bool {
	if _, ok := v.(literal.Tuple); ok {
		return false
	}
	switch insp.Classify(v) {
	case component.KindSequence, component.KindMapping:
		return true
	}
	return false
}

// isSimpleGroup reports whether every value of a mapping is a value, a
// list or a mapping
func isSimpleGroup(entries []component.Entry, insp component.Inspector) bool {
	for _, e := range entries {
		if !isValue(e.Value) && !isListOrMap(e.Value, insp) {
			return false
		}
	}
	return true
}
