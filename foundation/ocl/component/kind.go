// File: kind.go
// Title: Component Kinds and Capabilities
// Description: The closed set of component kinds and the interfaces
//              through which values describe themselves to the engine.
// Version: v0.1.0
// Created: 2026-09-08
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-08 v0.1.0: Initial implementation

package component

import "context"

// Kind classifies what the engine may do with a component
type Kind int

const (
	// KindLeaf allows member access only
	KindLeaf Kind = iota
	// KindInvocable is a constructor or a routine: it is called with the tokens
	KindInvocable
	// KindCallableValue is a value with a call operator; members are tried first
	KindCallableValue
	// KindSequence is indexed by integer tokens
	KindSequence
	// KindMapping is indexed by key tokens
	KindMapping
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindInvocable:
		return "invocable"
	case KindCallableValue:
		return "callable"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Member is a named sub-component
type Member struct {
	Name  string
	Value any
}

// Entry is one key/value pair of a mapping
type Entry struct {
	Key   any
	Value any
}

// Callable is implemented by values that can be called with bound arguments.
// args holds the values of Spec.Args in order followed by open-ended
// positional values; kwargs holds keyword-only and open-ended named values.
type Callable interface {
	CallSpec() Spec
	Call(ctx context.Context, args []any, kwargs map[string]any) (any, error)
}

// Awaitable is a pending result. The engine waits for it with the run's context.
type Awaitable interface {
	Await(ctx context.Context) (any, error)
}

// Membered is implemented by values that list their own members
type Membered interface {
	Members() []Member
}

// Documented is implemented by values that carry documentation
type Documented interface {
	Doc() string
}

// MethodDescriber lets a type name the parameters of its exported methods
// and attach defaults and documentation to them. method is the Go name.
type MethodDescriber interface {
	DescribeMethod(method string) []Option
}

// Inspector is the introspection capability the engine depends on
type Inspector interface {
	// Classify returns the kind of c. It is evaluated on every step.
	Classify(c any) Kind
	// Signature returns the call signature of an invocable or callable value
	Signature(c any) (Spec, bool)
	// Invoke calls c. Failures to convert bound values are *ArgumentError;
	// any other error comes from the target itself.
	Invoke(ctx context.Context, c any, args []any, kwargs map[string]any) (any, error)
	// Elements returns the items of a sequence
	Elements(c any) []any
	// Entries returns the entries of a mapping
	Entries(c any) []Entry
	// Member returns the member called name
	Member(c any, name string) (any, bool)
	// Members lists members; names starting with "_" only when verbose
	Members(c any, verbose bool) []Member
	// Doc returns the documentation of c
	Doc(c any) string
	// Location returns the source position of c, if known
	Location(c any) (file string, line int)
}
