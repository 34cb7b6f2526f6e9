// File: object.go
// Title: Explicit Objects
// Description: Object is a named group of members declared in order. It
//              is the usual root of a command tree.
// Version: v0.1.0
// Created: 2026-09-09
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-09 v0.1.0: Initial implementation

package component

// Object groups named members
type Object struct {
	name    string
	doc     string
	members []Member
}

// NewObject creates an empty object
func NewObject(name string) *Object {
	return &Object{name: name}
}

// Add appends a member, replacing one with the same name
func (o *Object) Add(name string, value any) *Object {
	for i, m := range o.members {
		if m.Name == name {
			o.members[i].Value = value
			return o
		}
	}
	o.members = append(o.members, Member{Name: name, Value: value})
	return o
}

// WithDoc sets the documentation
func (o *Object) WithDoc(doc string) *Object {
	o.doc = doc
	return o
}

// Name returns the object name
func (o *Object) Name() string {
	return o.name
}

// Doc returns the documentation
func (o *Object) Doc() string {
	return o.doc
}

// Members returns the members in declaration order
func (o *Object) Members() []Member {
	out := make([]Member, len(o.members))
	copy(out, o.members)
	return out
}

// Get returns the member called name
func (o *Object) Get(name string) (any, bool) {
	for _, m := range o.members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}
