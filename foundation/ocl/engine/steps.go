// File: steps.go
// Title: Traversal Behaviors
// Description: The behaviors a step can apply to the current component:
//              calling, indexing, key lookup and member access, plus the
//              help shortcut check. Each returns a binding or traversal
//              error as a candidate instead of failing the run.
// Version: v0.1.2
// Created: 2026-09-15
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-15 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Suggestions for unknown members and keys
// - 2026-10-17 v0.1.2: Mapping keys with dashes match underscore tokens

package engine

import (
	"fmt"
	"strconv"
	"strings"

	zderror "github.com/msto63/zunder/foundation/core/error"
	zdlog "github.com/msto63/zunder/foundation/core/log"
	"github.com/msto63/zunder/foundation/ocl/binder"
	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/flags"
	"github.com/msto63/zunder/foundation/ocl/trace"
)

// call binds tokens to the signature of c and invokes it. A binding
// failure is returned as bindErr; err is an error of the target itself.
func (r *run) call(c any, tokens []string, kind component.Kind) (result any, rest []string, bindErr *zderror.Error, err error) {
	spec, ok := r.inspector.Signature(c)
	if !ok {
		return nil, nil, traversalError(zderror.CodeInternal, "%T has no call signature", c), nil
	}

	bound, err := binder.Bind(spec, tokens, r.engine.parser)
	if err != nil {
		return nil, nil, asBindingError(err), nil
	}

	timer := r.logger.StartTimer("invoke").WithField("target", spec.Name)
	result, err = r.inspector.Invoke(r.ctx, c, bound.Positional, bound.Named)
	if err == nil {
		if pending, ok := result.(component.Awaitable); ok {
			result, err = pending.Await(r.ctx)
		}
	}
	if err != nil {
		timer.StopWithError(err)
		if ae, ok := err.(*component.ArgumentError); ok {
			return nil, nil, ae.Err, nil
		}
		return nil, nil, nil, err
	}
	timer.Stop()

	action := trace.ActionCalledRoutine
	switch {
	case kind == component.KindCallableValue:
		action = trace.ActionCalledCallable
	case spec.Constructor:
		action = trace.ActionInstantiatedClass
	}
	target := spec.Name
	if target == "" {
		target = fmt.Sprintf("%T", c)
	}
	file, line := spec.Filename, spec.Line
	if file == "" {
		file, line = r.inspector.Location(c)
	}
	r.trace.AddCalledComponent(result, target, bound.Consumed, file, line, bound.Capacity, action)
	return result, bound.Remaining, nil, nil
}

// index selects an element of a sequence. Negative indexes count from the
// end.
func (r *run) index(c any, arg string) (any, bool, *zderror.Error) {
	fail := traversalError(zderror.CodeIndexOutOfRange,
		"Unable to index into component with argument: %s", arg)

	i, err := strconv.Atoi(arg)
	if err != nil {
		return nil, false, fail
	}
	items := r.inspector.Elements(c)
	pos := i
	if pos < 0 {
		pos += len(items)
	}
	if pos < 0 || pos >= len(items) {
		return nil, false, fail.WithDetail("length", len(items))
	}

	next := items[pos]
	r.trace.AddAccessedProperty(next, strconv.Itoa(i), []string{arg}, "", 0)
	return next, true, nil
}

// lookup selects a mapping value by exact key, then with dashes turned into
// underscores on either side, then by the text of a non-string key
func (r *run) lookup(c any, arg string) (any, bool, *zderror.Error) {
	entries := r.inspector.Entries(c)
	found := component.FindKey(entries, arg)
	if found < 0 {
		for i, e := range entries {
			if component.Stringify(e.Key) == arg {
				found = i
				break
			}
		}
	}
	if found < 0 {
		keys := make([]string, len(entries))
		for i, e := range entries {
			keys[i] = component.Stringify(e.Key)
		}
		return nil, false, withSuggestions(
			traversalError(zderror.CodeKeyNotFound, "Cannot find key: %s", arg), arg, keys)
	}

	next := entries[found].Value
	r.trace.AddAccessedProperty(next, arg, []string{arg}, "", 0)
	return next, true, nil
}

// member accesses a member by name or by the name with dashes turned into
// underscores
func (r *run) member(c any, arg string) (any, bool, *zderror.Error) {
	for _, name := range []string{arg, strings.ReplaceAll(arg, "-", "_")} {
		if next, ok := r.inspector.Member(c, name); ok {
			file, line := r.inspector.Location(next)
			r.trace.AddAccessedProperty(next, arg, []string{arg}, file, line)
			return next, true, nil
		}
	}

	members := r.inspector.Members(c, r.globals.Verbose)
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	return nil, false, withSuggestions(
		traversalError(zderror.CodeMemberNotFound, "Could not consume arg: %s", arg), arg, names)
}

// isHelpShortcut reports whether a leading -h or --help asks for help
// rather than being consumed by the current component. It marks the trace
// when it does.
func (r *run) isHelpShortcut(tokens []string) bool {
	if len(tokens) == 0 || (tokens[0] != "-h" && tokens[0] != "--help") {
		return false
	}
	target := tokens[0]
	c := r.trace.Result()

	show := false
	if r.inspector.Classify(c) == component.KindInvocable {
		spec, _ := r.inspector.Signature(c)
		classified, err := flags.Classify(tokens, spec.Accepted(), spec.VarKw != "")
		if err == nil {
			for _, t := range classified.RemainingFlags {
				if t == target {
					show = true
					break
				}
			}
		}
	} else {
		_, isMember := r.inspector.Member(c, target)
		show = !isMember
	}

	if show {
		r.trace.ShowHelp = true
		r.trace.HelpShortcut = true
		r.logger.Debug("help shortcut", zdlog.Fields{"token": target})
	}
	return show
}

// traversalError creates a binding or traversal error
func traversalError(code zderror.Code, format string, args ...any) *zderror.Error {
	return zderror.Newf(format, args...).
		WithCode(code).
		WithOperation("engine.Run")
}

// asBindingError converts an error from the binder
func asBindingError(err error) *zderror.Error {
	if e, ok := zderror.As(err); ok {
		return e
	}
	return zderror.Wrap(err, "binding failed").
		WithCode(zderror.CodeInvalidValue).
		WithOperation("engine.Run")
}

// formatArgs renders tokens as ['a', 'b']
func formatArgs(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = "'" + strings.ReplaceAll(t, "'", `\'`) + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
