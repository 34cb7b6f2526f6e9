// File: spec.go
// Title: Call Signatures
// Description: Spec describes how a callable accepts arguments: ordered
//              names, defaults, keyword-only names, open-ended capture and
//              per-argument parse functions. Options build a Spec during
//              registration.
// Version: v0.1.1
// Created: 2026-09-08
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-08 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Parameter types for help

package component

// ParseFunc converts one raw token into an argument value
type ParseFunc func(raw string) (any, error)

// ParseFns selects parse functions per argument. A nil entry falls through.
type ParseFns struct {
	Default    ParseFunc
	Positional []ParseFunc
	Named      map[string]ParseFunc
}

// Spec is the call signature of an invocable or callable value
type Spec struct {
	// Name is shown as the trace target
	Name string
	// Args are filled by name or position, in order
	Args []string
	// Defaults by argument name, for Args and KwOnly
	Defaults map[string]any
	// Types by argument name, as shown in help
	Types map[string]string
	// KwOnly names may only be given as flags
	KwOnly []string
	// VarArgs names the open-ended positional capture; empty when absent
	VarArgs string
	// VarKw names the open-ended named capture; empty when absent
	VarKw string
	// AcceptsPositional allows Args to be filled from positional tokens
	AcceptsPositional bool
	// Constructor marks a call that creates an instance
	Constructor bool
	ParseFns    *ParseFns
	Doc         string
	Filename    string
	Line        int
}

// Accepted returns the names that can be given as flags
func (s Spec) Accepted() []string {
	names := make([]string, 0, len(s.Args)+len(s.KwOnly))
	names = append(names, s.Args...)
	return append(names, s.KwOnly...)
}

// HasDefault reports whether name has a default value
func (s Spec) HasDefault(name string) bool {
	_, ok := s.Defaults[name]
	return ok
}

// RequiredArgs returns the Args without defaults
func (s Spec) RequiredArgs() []string {
	var out []string
	for _, a := range s.Args {
		if !s.HasDefault(a) {
			out = append(out, a)
		}
	}
	return out
}

// RequiredKwOnly returns the keyword-only names without defaults
func (s Spec) RequiredKwOnly() []string {
	var out []string
	for _, a := range s.KwOnly {
		if !s.HasDefault(a) {
			out = append(out, a)
		}
	}
	return out
}

// IsArg reports whether name is one of Args
func (s Spec) IsArg(name string) bool {
	for _, a := range s.Args {
		if a == name {
			return true
		}
	}
	return false
}

// IsKwOnly reports whether name is one of KwOnly
func (s Spec) IsKwOnly(name string) bool {
	for _, a := range s.KwOnly {
		if a == name {
			return true
		}
	}
	return false
}

// ParseFuncFor returns the parse function for the argument at index (-1
// when the value is not one of Args) called name. Positional functions take
// precedence over named ones, which take precedence over the default. It
// returns nil when the literal parser applies.
func (s Spec) ParseFuncFor(index int, name string) ParseFunc {
	if s.ParseFns == nil {
		return nil
	}
	if index >= 0 && index < len(s.ParseFns.Positional) && s.ParseFns.Positional[index] != nil {
		return s.ParseFns.Positional[index]
	}
	if fn, ok := s.ParseFns.Named[name]; ok && fn != nil {
		return fn
	}
	return s.ParseFns.Default
}

// Option configures a Spec during registration
type Option func(*Spec)

// WithArgs names the parameters that can be given by position or flag
func WithArgs(names ...string) Option {
	return func(s *Spec) { s.Args = names }
}

// WithKwOnly names the parameters following Args that must be given as flags
func WithKwOnly(names ...string) Option {
	return func(s *Spec) { s.KwOnly = names }
}

// WithDefault sets the default value of a parameter
func WithDefault(name string, value any) Option {
	return func(s *Spec) {
		if s.Defaults == nil {
			s.Defaults = map[string]any{}
		}
		s.Defaults[name] = value
	}
}

// WithVarArgs names the variadic parameter
func WithVarArgs(name string) Option {
	return func(s *Spec) { s.VarArgs = name }
}

// WithVarKw declares that the map[string]any parameter after the named
// parameters captures all other flags
func WithVarKw(name string) Option {
	return func(s *Spec) { s.VarKw = name }
}

// WithPositional overrides whether Args may be given by position
func WithPositional(accepts bool) Option {
	return func(s *Spec) { s.AcceptsPositional = accepts }
}

// WithParseFns replaces the parse functions
func WithParseFns(fns ParseFns) Option {
	return func(s *Spec) { s.ParseFns = &fns }
}

// WithType sets the type shown in help for a parameter
func WithType(name, typ string) Option {
	return func(s *Spec) {
		if s.Types == nil {
			s.Types = map[string]string{}
		}
		s.Types[name] = typ
	}
}

// WithDoc sets the documentation
func WithDoc(doc string) Option {
	return func(s *Spec) { s.Doc = doc }
}

// WithLocation overrides the source position
func WithLocation(file string, line int) Option {
	return func(s *Spec) {
		s.Filename = file
		s.Line = line
	}
}
