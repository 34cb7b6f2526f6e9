// Package ocl turns a live object graph into a command line.
//
// Package: ocl
// Title: Object Command Line
// Description: Fire runs command-line tokens against a component and
//              presents the outcome: the result on stdout, help, usage,
//              traces and errors on stderr. It wires the engine to the
//              help renderer, the completion generator and the interactive
//              session, configured by one config.EngineConfig.
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Usage:
//
//	root := component.NewObject("calc").
//		Add("add", component.MustFunc("add", func(a, b int) int { return a + b },
//			component.WithArgs("a", "b")))
//	result, err := ocl.Fire(ctx, root, ocl.Options{Name: "calc"})
//	var exit *ocl.ExitError
//	if errors.As(err, &exit) {
//		os.Exit(exit.Code)
//	}
package ocl

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/msto63/zunder/foundation/core/config"
	zderror "github.com/msto63/zunder/foundation/core/error"
	zdlog "github.com/msto63/zunder/foundation/core/log"
	"github.com/msto63/zunder/foundation/ocl/completion"
	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/engine"
	"github.com/msto63/zunder/foundation/ocl/helptext"
	"github.com/msto63/zunder/foundation/ocl/interact"
	"github.com/msto63/zunder/foundation/ocl/trace"
	"github.com/msto63/zunder/foundation/utils/shellx"
)

// Exit codes carried by ExitError
const (
	ExitCodeOK    = 0
	ExitCodeError = 2
)

// ExitError ends a command without a result. Code is 0 after help, trace or
// completion output and 2 after a binding or traversal error.
type ExitError struct {
	Code  int
	Trace *trace.Trace
}

func (e *ExitError) Error() string {
	if e.Trace != nil && e.Trace.HasError() {
		return e.Trace.Err().Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Options configures Fire
type Options struct {
	// Name is the command name; the base name of os.Args[0] when empty
	Name string
	// Command is split like a shell command line when set
	Command string
	// Args are the tokens when Command is empty; os.Args[1:] when nil
	Args   []string
	Config *config.EngineConfig
	Logger *zdlog.Logger
	// Inspector describes components; the default Reflector when nil
	Inspector component.Inspector
	Stdout    io.Writer
	Stderr    io.Writer
	// Serialize converts the result before it is printed
	Serialize func(any) (any, error)
	// Interactor replaces the bubbletea session
	Interactor engine.Interactor
}

func (o Options) withDefaults() Options {
	if o.Name == "" && len(os.Args) > 0 {
		o.Name = filepath.Base(os.Args[0])
	}
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Logger == nil {
		o.Logger = zdlog.GetDefault()
	}
	if o.Inspector == nil {
		o.Inspector = component.NewReflector()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// Tokens returns the tokens Fire runs for opts
func (o Options) Tokens() ([]string, error) {
	if o.Command != "" {
		tokens, err := shellx.Split(o.Command)
		if err != nil {
			return nil, zderror.Wrap(err, "cannot split command").
				WithCode(zderror.CodeUsage).
				WithDetail("command", o.Command).
				WithOperation("ocl.Fire")
		}
		return tokens, nil
	}
	if o.Args != nil {
		return o.Args, nil
	}
	if len(os.Args) > 1 {
		return os.Args[1:], nil
	}
	return nil, nil
}

// Fire runs the command against root and prints the outcome. It returns
// the final component on success, an *ExitError when the command ended
// with help, a trace, a completion script or a binding error, and any
// other error of an invoked target unchanged.
func Fire(ctx context.Context, root any, opts Options) (any, error) {
	opts = opts.withDefaults()
	cfg := opts.Config
	logger := opts.Logger.WithField("component", "ocl")

	tokens, err := opts.Tokens()
	if err != nil {
		return nil, err
	}

	help := helptext.Options{
		Inspector:  opts.Inspector,
		Verbose:    cfg.Verbose,
		LineLength: cfg.Help.LineLength,
	}
	engOpts := engine.Options{
		Logger:    opts.Logger,
		Inspector: opts.Inspector,
		Name:      opts.Name,
		Config:    cfg,
		Completer: completion.New(completion.Options{
			Inspector: opts.Inspector,
			Depth:     cfg.Completion.Depth,
			Shell:     cfg.Completion.Shell,
			Logger:    opts.Logger,
		}),
	}
	engOpts.Interactor = opts.Interactor
	if engOpts.Interactor == nil {
		engOpts.Interactor = interact.New(interact.Options{
			Engine: engOpts,
			Help:   help,
			Config: cfg.Interactive,
			Logger: opts.Logger,
		})
	}

	tr, err := engine.New(engOpts).Run(ctx, root, tokens)
	if err != nil {
		logger.Debug("command failed", zdlog.Fields{"error": err.Error()})
		return nil, err
	}

	help.Verbose = help.Verbose || tr.Verbose
	errHelp := help
	errHelp.Styler = helptext.NewStyler(opts.Stderr, cfg.Help.Color)

	if tr.HasError() {
		displayError(opts.Stderr, tr, errHelp)
		return nil, &ExitError{Code: ExitCodeError, Trace: tr}
	}

	result := tr.Result()
	if tr.ShowTrace || tr.ShowHelp {
		if tr.HelpShortcut {
			fmt.Fprintf(opts.Stderr, "INFO: Showing help with the command %s.\n\n",
				shellx.Quote(tr.Command(false)+" -- --help"))
		}
		if tr.ShowTrace {
			fmt.Fprintf(opts.Stderr, "Trace:\n%s\n", tr)
		}
		if tr.ShowHelp {
			fmt.Fprintln(opts.Stderr, helptext.HelpText(result, tr, errHelp))
		}
		return nil, &ExitError{Code: ExitCodeOK, Trace: tr}
	}

	printed := result
	if opts.Serialize != nil {
		printed, err = opts.Serialize(result)
		if err != nil {
			return nil, err
		}
	}
	outHelp := help
	outHelp.Styler = helptext.NewStyler(opts.Stdout, cfg.Help.Color)
	if err := helptext.PrintResult(opts.Stdout, printed, tr, outHelp); err != nil {
		return nil, err
	}
	if last := tr.Last(); last.Action == trace.ActionCompletionScript {
		return nil, &ExitError{Code: ExitCodeOK, Trace: tr}
	}
	return result, nil
}

// displayError shows a binding error with the usage of the last healthy
// component, or the full help when the failed step asked for it
func displayError(w io.Writer, tr *trace.Trace, opts helptext.Options) {
	result := tr.Result()
	for _, arg := range tr.Last().Args {
		if arg == "-h" || arg == "--help" {
			fmt.Fprintf(w, "INFO: Showing help with the command %s.\n\n",
				shellx.Quote(tr.Command(false)+" -- --help"))
			fmt.Fprintln(w, helptext.HelpText(result, tr, opts))
			return
		}
	}
	fmt.Fprintln(w, opts.Styler.Error("ERROR:")+" "+tr.Err().Error())
	fmt.Fprintln(w, helptext.UsageText(result, tr, opts))
}
