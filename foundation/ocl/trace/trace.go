// Package trace records the steps of one engine run.
//
// Package: trace
// Title: Execution Trace
// Description: A Trace is an ordered list of elements, one per action the
//              engine took: the initial component, members accessed,
//              routines called, classes instantiated, completion scripts
//              generated, interactive sessions entered and binding errors.
//              The trace yields the result of the run and a shell command
//              that reproduces it.
// Version: v0.1.0
// Created: 2026-09-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-13 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Execution ID and help shortcut marker
package trace

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	zderror "github.com/msto63/zunder/foundation/core/error"
	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/flags"
	"github.com/msto63/zunder/foundation/utils/shellx"
)

// Action names what a trace element did
type Action string

// Actions recorded by the engine
const (
	ActionInitial           Action = "Initial component"
	ActionInstantiatedClass Action = "Instantiated class"
	ActionCalledRoutine     Action = "Called routine"
	ActionCalledCallable    Action = "Called callable"
	ActionAccessedProperty  Action = "Accessed property"
	ActionCompletionScript  Action = "Generated completion script"
	ActionInteractiveMode   Action = "Entered interactive mode"
)

// Element is one step of a run
type Element struct {
	// Component is the value the step produced
	Component any
	Action    Action
	// Target names the member, key or callable acted on
	Target   string
	Args     []string
	Filename string
	Line     int
	// Err is set on error elements, which have no action
	Err       *zderror.Error
	Separator bool
	// Capacity reports whether the call could have taken more arguments
	Capacity bool
}

// HasError reports whether the element records an error
func (e *Element) HasError() bool {
	return e.Err != nil
}

func (e *Element) String() string {
	if e.HasError() {
		return e.Err.Error()
	}
	s := string(e.Action)
	if e.Target != "" {
		s += ` "` + e.Target + `"`
	}
	if e.Filename != "" {
		path := e.Filename
		if e.Line > 0 {
			path += ":" + strconv.Itoa(e.Line)
		}
		s += " (" + path + ")"
	}
	return s
}

// Options configures a new Trace
type Options struct {
	// Name is the command name that starts reproduced commands
	Name      string
	Separator string
	Verbose   bool
	ShowHelp  bool
	ShowTrace bool
}

// Trace records the steps of one run. It is not safe for concurrent use.
type Trace struct {
	ExecutionID string
	Name        string
	Separator   string
	Verbose     bool
	ShowHelp    bool
	ShowTrace   bool
	// HelpShortcut is set when a leading -h or --help was taken as a
	// request for help instead of as an argument
	HelpShortcut bool
	StartTime    time.Time

	elements []*Element
}

// New starts a trace at the initial component
func New(initial any, opts Options) *Trace {
	if opts.Separator == "" {
		opts.Separator = flags.DefaultSeparator
	}
	return &Trace{
		ExecutionID: uuid.New().String(),
		Name:        opts.Name,
		Separator:   opts.Separator,
		Verbose:     opts.Verbose,
		ShowHelp:    opts.ShowHelp,
		ShowTrace:   opts.ShowTrace,
		StartTime:   time.Now(),
		elements:    []*Element{{Component: initial, Action: ActionInitial}},
	}
}

// Elements returns the recorded elements in order
func (t *Trace) Elements() []*Element {
	return append([]*Element(nil), t.elements...)
}

// Last returns the most recent element
func (t *Trace) Last() *Element {
	return t.elements[len(t.elements)-1]
}

// LastHealthy returns the most recent element without an error. The
// initial element is always healthy.
func (t *Trace) LastHealthy() *Element {
	for i := len(t.elements) - 1; i >= 0; i-- {
		if !t.elements[i].HasError() {
			return t.elements[i]
		}
	}
	return t.elements[0]
}

// Result returns the component of the last healthy element
func (t *Trace) Result() any {
	return t.LastHealthy().Component
}

// HasError reports whether the run ended in an error
func (t *Trace) HasError() bool {
	return t.Last().HasError()
}

// Err returns the error of the last element, or nil
func (t *Trace) Err() *zderror.Error {
	return t.Last().Err
}

// AddAccessedProperty records a member, index or key access
func (t *Trace) AddAccessedProperty(c any, target string, args []string, filename string, line int) {
	t.elements = append(t.elements, &Element{
		Component: c,
		Action:    ActionAccessedProperty,
		Target:    target,
		Args:      args,
		Filename:  filename,
		Line:      line,
	})
}

// AddCalledComponent records a call. action is one of the call actions.
func (t *Trace) AddCalledComponent(c any, target string, args []string, filename string, line int, capacity bool, action Action) {
	t.elements = append(t.elements, &Element{
		Component: c,
		Action:    action,
		Target:    target,
		Args:      args,
		Filename:  filename,
		Line:      line,
		Capacity:  capacity,
	})
}

// AddCompletionScript records a generated completion script
func (t *Trace) AddCompletionScript(script string) {
	t.elements = append(t.elements, &Element{Component: script, Action: ActionCompletionScript})
}

// AddInteractiveMode records an interactive session
func (t *Trace) AddInteractiveMode() {
	t.elements = append(t.elements, &Element{Action: ActionInteractiveMode})
}

// AddError records a binding or traversal error with the args that caused it
func (t *Trace) AddError(err *zderror.Error, args []string) {
	t.elements = append(t.elements, &Element{Err: err, Args: args})
}

// AddSeparator marks that the most recent element was followed by a
// separator
func (t *Trace) AddSeparator() {
	t.Last().Separator = true
}

// NeedsSeparator reports whether a separator must follow the command so
// that further args act on the result instead of extending the last call
func (t *Trace) NeedsSeparator() bool {
	e := t.LastHealthy()
	return e.Capacity && !e.Separator
}

// Command returns a shell command that reproduces the trace
func (t *Trace) Command(includeSeparators bool) string {
	var args []string
	if t.Name != "" {
		args = append(args, t.Name)
	}
	for _, e := range t.elements {
		if e.HasError() {
			continue
		}
		args = append(args, e.Args...)
		if e.Separator && includeSeparators {
			args = append(args, t.Separator)
		}
	}
	if t.NeedsSeparator() && includeSeparators {
		args = append(args, t.Separator)
	}
	return shellx.Join(args)
}

// Signer returns call signatures. component.Inspector satisfies it.
type Signer interface {
	Signature(c any) (component.Spec, bool)
}

// NeedsSeparatingHyphenHyphen reports whether "--" must precede --flag so
// that the result component does not take it as an argument
func (t *Trace) NeedsSeparatingHyphenHyphen(flag string, signer Signer) bool {
	spec, ok := signer.Signature(t.Result())
	if !ok {
		return false
	}
	return spec.VarKw != "" || spec.IsArg(flag) || spec.IsKwOnly(flag)
}

// String lists the elements, one numbered line each
func (t *Trace) String() string {
	lines := make([]string, len(t.elements))
	for i, e := range t.elements {
		lines[i] = fmt.Sprintf("%d. %s", i+1, e)
	}
	return strings.Join(lines, "\n")
}
