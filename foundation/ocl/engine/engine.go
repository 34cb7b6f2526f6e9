// File: engine.go
// Title: Traversal Engine
// Description: Engine construction and the run loop. One Run owns one trace
//              and walks the object graph until the tokens are used up, an
//              error is recorded or no further progress is possible.
// Version: v0.1.0
// Created: 2026-09-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-15 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Configured global option defaults

package engine

import (
	"context"
	"slices"

	"github.com/msto63/zunder/foundation/core/config"
	zderror "github.com/msto63/zunder/foundation/core/error"
	zdlog "github.com/msto63/zunder/foundation/core/log"
	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/flags"
	"github.com/msto63/zunder/foundation/ocl/literal"
	"github.com/msto63/zunder/foundation/ocl/trace"
)

// Completer generates shell completion scripts
type Completer interface {
	Script(name string, root any, shell string) (string, error)
}

// Interactor opens an interactive session over the given variables
type Interactor interface {
	Embed(ctx context.Context, variables *component.Object, verbose bool) error
}

// Options configures an Engine
type Options struct {
	Logger    *zdlog.Logger
	Inspector component.Inspector
	// Parser converts raw tokens; the default literal parser when nil
	Parser *literal.Parser
	// Name is the command name used in reproduced commands, completion
	// scripts and as a session variable
	Name string
	// Config supplies the separator, verbosity and literal quirks. Options
	// given explicitly in Globals and Parser take precedence.
	Config *config.EngineConfig
	// Globals are the global option defaults that tokens after "--" override
	Globals    flags.GlobalOptions
	Completer  Completer
	Interactor Interactor
}

// Engine runs commands against object graphs. It keeps no state between
// runs.
type Engine struct {
	logger     *zdlog.Logger
	inspector  component.Inspector
	parser     *literal.Parser
	name       string
	globals    flags.GlobalOptions
	completer  Completer
	interactor Interactor
}

// New creates an engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = zdlog.GetDefault()
	}
	if opts.Inspector == nil {
		opts.Inspector = component.NewReflector()
	}
	if cfg := opts.Config; cfg != nil {
		if opts.Parser == nil {
			opts.Parser = literal.New(literal.Options{
				CommentHash:       cfg.Literal.CommentHash,
				StripLeadingZeros: cfg.Literal.StripLeadingZeros,
			})
		}
		if opts.Globals.Separator == "" {
			opts.Globals.Separator = cfg.Separator
		}
		opts.Globals.Verbose = opts.Globals.Verbose || cfg.Verbose
	}
	if opts.Parser == nil {
		opts.Parser = literal.New(literal.DefaultOptions())
	}
	if opts.Globals.Separator == "" {
		opts.Globals.Separator = flags.DefaultSeparator
	}

	return &Engine{
		logger:     opts.Logger.WithField("component", "ocl-engine"),
		inspector:  opts.Inspector,
		parser:     opts.Parser,
		name:       opts.Name,
		globals:    opts.Globals,
		completer:  opts.Completer,
		interactor: opts.Interactor,
	}
}

// Inspector returns the inspector the engine classifies components with
func (e *Engine) Inspector() component.Inspector {
	return e.inspector
}

// Name returns the command name
func (e *Engine) Name() string {
	return e.name
}

// Run splits off the global options after the final "--" and executes the
// remaining tokens against root. The returned trace is nil only when the
// global options are invalid.
func (e *Engine) Run(ctx context.Context, root any, tokens []string) (*trace.Trace, error) {
	engineTokens, globalTokens := flags.SeparateFlagArgs(tokens)
	globals, err := flags.ParseGlobalOptionsWith(e.globals, globalTokens)
	if err != nil {
		return nil, err
	}
	return e.Execute(ctx, root, engineTokens, globals)
}

// Execute runs tokens against root with already parsed global options
func (e *Engine) Execute(ctx context.Context, root any, tokens []string, globals flags.GlobalOptions) (*trace.Trace, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if globals.Separator == "" {
		globals.Separator = flags.DefaultSeparator
	}

	tr := trace.New(root, trace.Options{
		Name:      e.name,
		Separator: globals.Separator,
		Verbose:   globals.Verbose,
		ShowHelp:  globals.Help,
		ShowTrace: globals.Trace,
	})
	r := &run{
		ctx:       ctx,
		engine:    e,
		inspector: e.inspector,
		globals:   globals,
		trace:     tr,
		logger:    e.logger.WithExecutionID(tr.ExecutionID),
	}

	timer := r.logger.StartTimer("run").WithField("tokens", len(tokens))
	err := r.loop(root, tokens)
	if err != nil {
		timer.StopWithError(err)
		return tr, err
	}
	if tr.HasError() {
		timer.WithField("error", tr.Err().Code().String())
	}
	timer.Stop()
	return tr, nil
}

// run is the state of one Execute call
type run struct {
	ctx       context.Context
	engine    *Engine
	inspector component.Inspector
	globals   flags.GlobalOptions
	trace     *trace.Trace
	logger    *zdlog.Logger
	// instance is the first value produced from the initial component
	instance any
}

func (r *run) terminalOptionPending() bool {
	g := r.globals
	return g.Help || g.Interactive || g.Trace || g.ShowCompletion()
}

func (r *run) loop(root any, tokens []string) error {
	sep := r.globals.Separator
	c := root
	remaining := tokens
	var initial []string

	for {
		last := c
		initial = remaining
		if len(remaining) == 0 && r.terminalOptionPending() {
			break
		}
		if r.isHelpShortcut(remaining) {
			remaining = nil
			break
		}

		var saved []string
		usedSeparator := false
		if i := slices.Index(remaining, sep); i >= 0 {
			saved = remaining[i+1:]
			remaining = remaining[:i]
			usedSeparator = true
		}

		kind := r.inspector.Classify(c)
		r.logger.Debug("step", zdlog.Fields{"kind": kind.String(), "tokens": remaining})

		next, rest, handled, candidate, err := r.step(c, kind, remaining)
		if err != nil {
			return err
		}
		if !handled && candidate != nil {
			r.trace.AddError(candidate, initial)
			return nil
		}
		if handled {
			c, remaining = next, rest
			if kind == component.KindInvocable && component.Same(last, root) {
				r.instance = c
			}
		}

		if usedSeparator {
			switch {
			case len(remaining) > 0:
				remaining = concat(remaining, []string{sep}, saved)
			case kind == component.KindInvocable:
				remaining = saved
				r.trace.AddSeparator()
			case handled && !component.Same(c, last):
				remaining = concat([]string{sep}, saved)
			default:
				remaining = saved
			}
		}

		if (!handled || component.Same(c, last)) && slices.Equal(remaining, initial) {
			break
		}
	}

	if len(remaining) > 0 {
		r.trace.AddError(traversalError(zderror.CodeUnconsumedArguments,
			"Could not consume arguments: %s", formatArgs(remaining)), initial)
		return nil
	}

	if r.globals.ShowCompletion() {
		if err := r.completion(root); err != nil {
			return err
		}
	}
	if r.globals.Interactive {
		if err := r.interactive(root, c); err != nil {
			return err
		}
	}
	return nil
}

// step applies the first behavior that can handle c. A non-nil error comes
// from an invoked target.
func (r *run) step(c any, kind component.Kind, tokens []string) (next any, rest []string, handled bool, candidate *zderror.Error, err error) {
	var candidates []*zderror.Error
	note := func(e *zderror.Error) {
		if e != nil {
			candidates = append(candidates, e)
		}
	}
	first := func() *zderror.Error {
		if len(candidates) == 0 {
			return nil
		}
		return candidates[0]
	}

	if kind == component.KindInvocable {
		next, rest, bindErr, err := r.call(c, tokens, kind)
		if err != nil {
			return nil, nil, false, nil, err
		}
		if bindErr == nil {
			return next, rest, true, nil, nil
		}
		note(bindErr)
	}

	if kind == component.KindSequence && len(tokens) > 0 {
		next, ok, e := r.index(c, tokens[0])
		if ok {
			return next, tokens[1:], true, nil, nil
		}
		note(e)
	}

	if kind == component.KindMapping && len(tokens) > 0 {
		next, ok, e := r.lookup(c, tokens[0])
		if ok {
			return next, tokens[1:], true, nil, nil
		}
		note(e)
	}

	if len(tokens) > 0 {
		next, ok, e := r.member(c, tokens[0])
		if ok {
			return next, tokens[1:], true, nil, nil
		}
		note(e)
	}

	if kind == component.KindCallableValue {
		next, rest, bindErr, err := r.call(c, tokens, kind)
		if err != nil {
			return nil, nil, false, nil, err
		}
		if bindErr == nil {
			return next, rest, true, nil, nil
		}
		note(bindErr)
	}

	return nil, nil, false, first(), nil
}

// completion adds a completion script for the root component
func (r *run) completion(root any) error {
	if r.engine.name == "" {
		return zderror.New("Cannot make completion script without command name").
			WithCode(zderror.CodeUsage).
			WithOperation("engine.Run")
	}
	if r.engine.completer == nil {
		return zderror.New("completion scripts are not available").
			WithCode(zderror.CodeUsage).
			WithOperation("engine.Run")
	}
	script, err := r.engine.completer.Script(r.engine.name, root, r.globals.Completion)
	if err != nil {
		return err
	}
	r.trace.AddCompletionScript(script)
	return nil
}

// interactive opens a session over the run's variables
func (r *run) interactive(root, result any) error {
	if r.engine.interactor == nil {
		return zderror.New("interactive mode is not available").
			WithCode(zderror.CodeUsage).
			WithOperation("engine.Run")
	}
	vars := Variables(r.engine.name, root, result, r.trace, r.instance)
	r.logger.Info("entering interactive mode", zdlog.Fields{"variables": len(vars.Members())})
	if err := r.engine.interactor.Embed(r.ctx, vars, r.globals.Verbose); err != nil {
		return err
	}
	r.trace.AddInteractiveMode()
	return nil
}

// Variables returns the session variables of a run: the command name and
// "component" for the root, "result", "trace" and, when the root produced
// an instance, "self".
func Variables(name string, root, result any, tr *trace.Trace, instance any) *component.Object {
	vars := component.NewObject("variables").
		WithDoc("Variables of the interactive session.")
	if name != "" {
		vars.Add(name, root)
	}
	vars.Add("component", root).
		Add("result", result).
		Add("trace", tr)
	if instance != nil {
		vars.Add("self", instance)
	}
	return vars
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
