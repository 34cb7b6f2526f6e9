// File: completion.go
// Title: Completion Candidates
// Description: Lists the completions of a single component and the
//              command paths reachable from a root.
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package completion

import (
	"strconv"
	"strings"

	zderror "github.com/msto63/zunder/foundation/core/error"
	zdlog "github.com/msto63/zunder/foundation/core/log"
	"github.com/msto63/zunder/foundation/ocl/component"
)

// Supported shells
const (
	ShellBash = "bash"
	ShellFish = "fish"
)

// DefaultDepth is how many member levels below the root are completed
const DefaultDepth = 3

// Options configures a Generator
type Options struct {
	// Inspector describes components; the default Reflector when nil
	Inspector component.Inspector
	// Depth limits how far below the root members are listed
	Depth int
	// Shell is used when a script is requested without naming one
	Shell string
	// DefaultOptions are offered after every command
	DefaultOptions []string
	Logger         *zdlog.Logger
}

// Generator renders completion scripts
type Generator struct {
	opts   Options
	logger *zdlog.Logger
}

// New creates a Generator
func New(opts Options) *Generator {
	if opts.Inspector == nil {
		opts.Inspector = component.NewReflector()
	}
	if opts.Depth <= 0 {
		opts.Depth = DefaultDepth
	}
	if opts.Shell == "" {
		opts.Shell = ShellBash
	}
	if opts.Logger == nil {
		opts.Logger = zdlog.GetDefault()
	}
	return &Generator{opts: opts, logger: opts.Logger.WithField("component", "ocl-completion")}
}

// Script renders the completion script of root for shell. An empty shell
// selects the configured one.
func (g *Generator) Script(name string, root any, shell string) (string, error) {
	if shell == "" {
		shell = g.opts.Shell
	}
	timer := g.logger.StartTimer("completion.Script").WithField("shell", shell)

	commands := Commands(root, g.opts.Inspector, g.opts.Depth)
	var script string
	switch shell {
	case ShellBash:
		script = BashScript(name, commands, g.opts.DefaultOptions)
	case ShellFish:
		script = FishScript(name, commands, g.opts.DefaultOptions)
	default:
		err := zderror.Newf("unsupported completion shell %q, expected bash or fish", shell).
			WithCode(zderror.CodeUsage).
			WithOperation("completion.Script").
			WithDetail("shell", shell)
		timer.StopWithError(err)
		return "", err
	}
	timer.WithField("commands", len(commands)).Stop()
	return script, nil
}

// Script renders the completion script of root with the given options
func Script(name string, root any, shell string, opts Options) (string, error) {
	return New(opts).Script(name, root, shell)
}

// VisibleMembers lists the members of c that help and completion show.
// Mappings offer their keys. Names starting with "_" are shown only when
// verbose.
func VisibleMembers(c any, insp component.Inspector, verbose bool) []component.Member {
	if insp.Classify(c) != component.KindMapping {
		return insp.Members(c, verbose)
	}
	var out []component.Member
	for _, e := range insp.Entries(c) {
		name := component.Stringify(e.Key)
		if !verbose && strings.HasPrefix(name, "_") {
			continue
		}
		out = append(out, component.Member{Name: name, Value: e.Value})
	}
	return out
}

// Completions returns what may follow c: the flags of an invocable, the
// indexes of a sequence, or the visible members otherwise
func Completions(c any, insp component.Inspector, verbose bool) []string {
	switch insp.Classify(c) {
	case component.KindInvocable:
		spec, _ := insp.Signature(c)
		var out []string
		for _, arg := range spec.Accepted() {
			out = append(out, "--"+strings.ReplaceAll(arg, "_", "-"))
		}
		return out
	case component.KindSequence:
		n := len(insp.Elements(c))
		out := make([]string, n)
		for i := range out {
			out[i] = strconv.Itoa(i)
		}
		return out
	}
	var out []string
	for _, m := range VisibleMembers(c, insp, verbose) {
		out = append(out, formatForCommand(m.Name))
	}
	return out
}

// Commands returns the command paths reachable from c, descending at most
// depth member levels. Invocables end a path with their flags.
func Commands(c any, insp component.Inspector, depth int) [][]string {
	var out [][]string
	collect(c, insp, depth, nil, &out)
	return out
}

func collect(c any, insp component.Inspector, depth int, prefix []string, out *[][]string) {
	if insp.Classify(c) == component.KindInvocable {
		for _, flag := range Completions(c, insp, false) {
			*out = append(*out, extend(prefix, flag))
		}
		return
	}
	if depth < 1 {
		return
	}
	for _, m := range VisibleMembers(c, insp, false) {
		path := extend(prefix, formatForCommand(m.Name))
		*out = append(*out, path)
		collect(m.Value, insp, depth-1, path, out)
	}
}

func extend(prefix []string, item string) []string {
	path := make([]string, len(prefix)+1)
	copy(path, prefix)
	path[len(prefix)] = item
	return path
}

// formatForCommand spells a member name as typed: underscores become
// hyphens unless the name is private
func formatForCommand(name string) string {
	if strings.HasPrefix(name, "_") {
		return name
	}
	return strings.ReplaceAll(name, "_", "-")
}

func isOption(arg string) bool {
	return strings.HasPrefix(arg, "-")
}
