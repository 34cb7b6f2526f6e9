// File: session.go
// Title: Session Evaluation
// Description: Session evaluates input lines against the session variables
//              and renders the outcome as text. It carries no terminal
//              state; the bubbletea model drives it.
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package interact

import (
	"context"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	zdlog "github.com/msto63/zunder/foundation/core/log"
	"github.com/msto63/zunder/foundation/ocl/completion"
	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/engine"
	"github.com/msto63/zunder/foundation/ocl/helptext"
	"github.com/msto63/zunder/foundation/ocl/trace"
	"github.com/msto63/zunder/foundation/utils/shellx"
)

// LastResultName is the variable holding the last result of the session
const LastResultName = "_"

// Output is the outcome of one evaluated line
type Output struct {
	// Text is what the session shows for the line
	Text string
	// Result is the final component of a successful run
	Result  any
	IsError bool
	// Trace is nil when the line never reached the engine
	Trace *trace.Trace
}

// Session evaluates lines against a set of variables
type Session struct {
	engine  *engine.Engine
	vars    *component.Object
	help    helptext.Options
	timeout time.Duration
	logger  *zdlog.Logger
}

// NewSession creates a session over vars. The engine must not carry an
// interactor, so a line cannot open a nested session.
func NewSession(eng *engine.Engine, vars *component.Object, help helptext.Options, timeout time.Duration, logger *zdlog.Logger) *Session {
	if logger == nil {
		logger = zdlog.GetDefault()
	}
	if help.Inspector == nil {
		help.Inspector = eng.Inspector()
	}
	return &Session{
		engine:  eng,
		vars:    vars,
		help:    help,
		timeout: timeout,
		logger:  logger.WithField("component", "ocl-interact"),
	}
}

// Variables returns the session variables
func (s *Session) Variables() *component.Object {
	return s.vars
}

// Evaluate runs one line. Errors are reported in the output, never returned.
func (s *Session) Evaluate(ctx context.Context, line string) Output {
	line = strings.TrimSpace(line)
	if line == "" {
		return Output{}
	}
	tokens, err := shellx.Split(line)
	if err != nil {
		return Output{Text: "ERROR: " + err.Error(), IsError: true}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	tr, err := s.engine.Run(ctx, s.vars, tokens)
	if err != nil {
		s.logger.Debug("line failed", zdlog.Fields{"line": line, "error": err.Error()})
		return Output{Text: err.Error(), IsError: true, Trace: tr}
	}
	return s.render(tr)
}

func (s *Session) render(tr *trace.Trace) Output {
	opts := s.help
	opts.Verbose = opts.Verbose || tr.Verbose
	result := tr.Result()

	if tr.HasError() {
		text := "ERROR: " + tr.Err().Error() + "\n" + helptext.UsageText(result, tr, opts)
		return Output{Text: text, IsError: true, Trace: tr}
	}

	var parts []string
	if tr.ShowTrace {
		parts = append(parts, "Trace:\n"+tr.String())
	}
	if tr.ShowHelp {
		parts = append(parts, helptext.HelpText(result, tr, opts))
	}
	if len(parts) > 0 {
		return Output{Text: strings.Join(parts, "\n"), Trace: tr}
	}

	out := Output{Result: result, Trace: tr}
	if text, ok := helptext.Result(result, tr, opts); ok {
		out.Text = text
	}
	if result != nil {
		s.vars.Add(LastResultName, result)
	}
	return out
}

// Complete returns candidates for the last word of line, best match first.
// The words before it are resolved through members, keys and indexes only;
// nothing is called.
func (s *Session) Complete(line string) []string {
	words, err := shellx.Split(line)
	if err != nil {
		return nil
	}
	partial := ""
	if len(words) > 0 && !strings.HasSuffix(line, " ") {
		partial = words[len(words)-1]
		words = words[:len(words)-1]
	}

	insp := s.engine.Inspector()
	var c any = s.vars
	for _, w := range words {
		next, ok := resolve(c, w, insp)
		if !ok {
			return nil
		}
		c = next
	}

	candidates := completion.Completions(c, insp, s.help.Verbose)
	if partial == "" {
		return candidates
	}
	matches := fuzzy.Find(partial, candidates)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}

// resolve follows one word without invoking anything
func resolve(c any, word string, insp component.Inspector) (any, bool) {
	switch insp.Classify(c) {
	case component.KindSequence:
		items := insp.Elements(c)
		for i, item := range items {
			if word == component.Stringify(i) {
				return item, true
			}
		}
		return nil, false
	case component.KindMapping:
		entries := insp.Entries(c)
		if i := component.FindKey(entries, word); i >= 0 {
			return entries[i].Value, true
		}
		for _, e := range entries {
			if component.Stringify(e.Key) == word {
				return e.Value, true
			}
		}
		return nil, false
	}
	if v, ok := insp.Member(c, word); ok {
		return v, true
	}
	return insp.Member(c, strings.ReplaceAll(word, "-", "_"))
}
