// File: embed.go
// Title: Session Embedding
// Description: Embedder opens a session for the engine's interactive mode.
//              It builds its own engine without an interactor, loads and
//              saves the input history and runs the bubbletea program.
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package interact

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/zunder/foundation/core/config"
	zdlog "github.com/msto63/zunder/foundation/core/log"
	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/engine"
	"github.com/msto63/zunder/foundation/ocl/helptext"
)

// Options configures an Embedder
type Options struct {
	// Engine configures the engine lines run on. Its Interactor is ignored.
	Engine engine.Options
	Help   helptext.Options
	Config config.InteractiveConfig
	Logger *zdlog.Logger
	// Input and Output replace the terminal when set
	Input  io.Reader
	Output io.Writer
}

// Embedder implements engine.Interactor with a bubbletea session
type Embedder struct {
	opts   Options
	logger *zdlog.Logger
}

// New creates an Embedder
func New(opts Options) *Embedder {
	if opts.Logger == nil {
		opts.Logger = zdlog.GetDefault()
	}
	opts.Engine.Interactor = nil
	opts.Engine.Name = ""
	if opts.Engine.Logger == nil {
		opts.Engine.Logger = opts.Logger
	}
	return &Embedder{opts: opts, logger: opts.Logger.WithField("component", "ocl-interact")}
}

// NewSession creates the session Embed would run, without a terminal
func (e *Embedder) NewSession(vars *component.Object, verbose bool) *Session {
	help := e.opts.Help
	help.Verbose = help.Verbose || verbose
	engOpts := e.opts.Engine
	engOpts.Globals.Verbose = engOpts.Globals.Verbose || verbose
	return NewSession(engine.New(engOpts), vars, help, e.opts.Config.EvalTimeout.Duration, e.logger)
}

// Embed runs a session over vars until the user leaves it
func (e *Embedder) Embed(ctx context.Context, vars *component.Object, verbose bool) error {
	cfg := e.opts.Config
	history, err := LoadHistory(cfg.HistoryFile, cfg.HistorySize)
	if err != nil {
		e.logger.WarnWithErr("history not loaded", err)
	}

	session := e.NewSession(vars, verbose)
	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if e.opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(e.opts.Input))
	}
	if e.opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(e.opts.Output))
	}

	started := time.Now()
	p := tea.NewProgram(NewModel(ctx, session, history), programOpts...)
	_, runErr := p.Run()
	e.logger.Info("interactive session ended", zdlog.Fields{
		"duration": time.Since(started).String(),
		"lines":    history.Len(),
	})

	if err := history.Save(cfg.HistoryFile); err != nil {
		e.logger.LogError(err)
	}
	return runErr
}
