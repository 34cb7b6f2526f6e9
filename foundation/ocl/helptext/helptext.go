// File: helptext.go
// Title: Help Screens
// Description: HelpText renders the help screen of a component: its name
//              and summary, a synopsis of what may follow it, the
//              description, arguments and flags of callables, and the
//              groups, commands, values and indexes it offers.
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package helptext

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/literal"
	"github.com/msto63/zunder/foundation/ocl/trace"
)

// Options configures rendering
type Options struct {
	// Inspector describes components; the default Reflector when nil
	Inspector component.Inspector
	// Verbose shows members starting with "_" and separators in names
	Verbose bool
	// LineLength is the layout width; DefaultLineLength when zero
	LineLength int
	// Styler renders emphasis; plain text when nil
	Styler *Styler
}

func (o Options) withDefaults() Options {
	if o.Inspector == nil {
		o.Inspector = component.NewReflector()
	}
	if o.LineLength <= 0 {
		o.LineLength = DefaultLineLength
	}
	return o
}

type section struct {
	name    string
	content string
}

type renderer struct {
	Options
}

// HelpText returns the help screen for c reached through tr. tr may be nil.
func HelpText(c any, tr *trace.Trace, opts Options) string {
	r := renderer{opts.withDefaults()}
	insp := r.Inspector

	doc := parseDoc(insp.Doc(c))
	acts := groupActions(c, insp, r.Verbose)
	spec, callable := insp.Signature(c)

	sections := []section{
		r.nameSection(c, doc, tr),
		r.synopsisSection(acts, spec, callable, tr),
	}
	if s, ok := r.descriptionSection(c, doc); ok {
		sections = append(sections, s)
	}
	var notes []section
	if callable {
		var argSections []section
		argSections, notes = r.argsAndFlagsSections(spec, doc)
		sections = append(sections, argSections...)
	}
	sections = append(sections, r.usageDetailsSections(c, acts)...)
	sections = append(sections, notes...)

	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = r.Styler.Bold(s.name) + "\n" + indent(s.content, sectionIndent)
	}
	return strings.Join(out, "\n\n")
}

func currentCommand(tr *trace.Trace, includeSeparators bool) string {
	if tr == nil {
		return ""
	}
	return tr.Command(includeSeparators)
}

func (r renderer) nameSection(c any, doc docInfo, tr *trace.Trace) section {
	command := currentCommand(tr, r.Verbose)
	summary := doc.Summary
	if s, ok := c.(string); ok {
		available := r.LineLength - sectionIndent - utf8.RuneCountInString(command+" - ")
		summary = stringSummary(s, available, r.LineLength)
	} else if plainValue(c) {
		summary = ""
	}
	if summary == "" {
		return section{"NAME", command}
	}
	return section{"NAME", command + " - " + summary}
}

func (r renderer) synopsisSection(acts *actions, spec component.Spec, callable bool, tr *trace.Trace) section {
	var continuations []string
	if possible := acts.possible(); len(possible) > 0 {
		names := make([]string, len(possible))
		for i, p := range possible {
			names[i] = r.Styler.Underline(strings.ToUpper(p))
		}
		continuations = append(continuations, strings.Join(names, " | "))
	}
	if callable {
		if s := r.argsAndFlagsString(spec); s != "" {
			continuations = append(continuations, s)
		} else if tr != nil {
			continuations = append(continuations, tr.Separator)
		}
	}
	return section{"SYNOPSIS", currentCommand(tr, true) + " " + strings.Join(continuations, " | ")}
}

func (r renderer) descriptionSection(c any, doc docInfo) (section, bool) {
	description, summary := doc.Description, doc.Summary
	if s, ok := c.(string); ok {
		available := r.LineLength - sectionIndent
		description = stringDescription(s, available, r.LineLength)
		summary = stringSummary(s, available, r.LineLength)
	} else if plainValue(c) {
		description, summary = "", ""
	}
	if description != "" {
		return section{"DESCRIPTION", description}, true
	}
	if summary != "" {
		return section{"DESCRIPTION", summary}, true
	}
	return section{}, false
}

// argsAndFlagsString shows how to call a callable, e.g. "ARG1 <flags>"
func (r renderer) argsAndFlagsString(spec component.Spec) string {
	var parts []string
	for _, arg := range spec.RequiredArgs() {
		if spec.AcceptsPositional {
			parts = append(parts, r.Styler.Underline(strings.ToUpper(arg)))
		} else {
			parts = append(parts, fmt.Sprintf("--%s=%s", arg, r.Styler.Underline(strings.ToUpper(arg))))
		}
	}
	if hasFlags(spec) {
		parts = append(parts, "<flags>")
	}
	if spec.VarArgs != "" {
		parts = append(parts, "["+r.Styler.Underline(strings.ToUpper(spec.VarArgs))+"]...")
	}
	return strings.Join(parts, " ")
}

func hasFlags(spec component.Spec) bool {
	return len(argsWithDefaults(spec)) > 0 || len(spec.KwOnly) > 0 || spec.VarKw != ""
}

func argsWithDefaults(spec component.Spec) []string {
	var out []string
	for _, a := range spec.Args {
		if spec.HasDefault(a) {
			out = append(out, a)
		}
	}
	return out
}

// shortFlags returns the first letters that start exactly one of names
func shortFlags(names []string) map[byte]bool {
	counts := map[byte]int{}
	for _, n := range names {
		if n != "" {
			counts[n[0]]++
		}
	}
	out := map[byte]bool{}
	for b, n := range counts {
		if n == 1 {
			out[b] = true
		}
	}
	return out
}

func (r renderer) argsAndFlagsSections(spec component.Spec, doc docInfo) (sections, notes []section) {
	required := spec.RequiredArgs()

	var argItems []string
	for _, arg := range required {
		argItems = append(argItems, r.argItem(arg, spec, doc))
	}
	if spec.VarArgs != "" {
		argItems = append(argItems, r.argItem(spec.VarArgs, spec, doc))
	}
	if len(argItems) > 0 {
		title := "ARGUMENTS"
		if spec.AcceptsPositional {
			title = "POSITIONAL ARGUMENTS"
		}
		sections = append(sections, section{title, strings.TrimRight(strings.Join(argItems, "\n"), "\n")})
		if len(required) > 0 && spec.AcceptsPositional {
			notes = append(notes, section{"NOTES", "You can also use flags syntax for POSITIONAL ARGUMENTS"})
		}
	}

	var flagItems []string
	optional := argsWithDefaults(spec)
	short := shortFlags(optional)
	for _, flag := range optional {
		flagItems = append(flagItems, r.flagItem(flag, spec, doc, false, "", short[flag[0]]))
	}
	short = shortFlags(spec.KwOnly)
	for _, flag := range spec.KwOnly {
		flagItems = append(flagItems, r.flagItem(flag, spec, doc, !spec.HasDefault(flag), "", short[flag[0]]))
	}

	if spec.VarKw != "" {
		var documented []string
		var names []string
		for _, a := range doc.Args {
			names = append(names, a.Name)
		}
		short = shortFlags(names)
		for _, a := range doc.Args {
			if !documentedKwarg(a.Name, spec) {
				continue
			}
			flagString := "--" + a.Name
			if short[a.Name[0]] {
				flagString = fmt.Sprintf("-%c, --%s", a.Name[0], a.Name)
			}
			documented = append(documented, r.flagItem(a.Name, spec, doc, false, flagString, false))
		}
		if len(documented) > 0 {
			if len(flagItems) > 0 {
				flagItems = append(flagItems, "The following flags are also accepted.")
			}
			flagItems = append(flagItems, documented...)
		}
		message := "Flags are accepted."
		switch {
		case len(documented) > 0:
			message = "Additional undocumented flags may also be accepted."
		case len(flagItems) > 0:
			message = "Additional flags are accepted."
		}
		flagItems = append(flagItems, createItem(message, doc.arg(spec.VarKw), subsectionIndent))
	}

	if len(flagItems) > 0 {
		sections = append(sections, section{"FLAGS", strings.Join(flagItems, "\n")})
	}
	return sections, notes
}

// documentedKwarg reports whether name is documented but not a parameter
func documentedKwarg(name string, spec component.Spec) bool {
	return !spec.IsArg(name) && !spec.IsKwOnly(name) && name != spec.VarArgs && name != spec.VarKw
}

func (r renderer) maxItemLength() int {
	return r.LineLength - sectionIndent - subsectionIndent
}

func (r renderer) argItem(arg string, spec component.Spec, doc docInfo) string {
	maxLen := r.maxItemLength()
	var parts []string
	if t := argType(arg, spec); t != "" {
		t = "Type: " + t
		parts = append(parts, ellipsisTruncate(t, maxLen-utf8.RuneCountInString(t), maxLen))
	}
	if d := doc.arg(arg); d != "" {
		parts = append(parts, d)
	}
	return createItem(r.Styler.BoldUnderline(strings.ToUpper(arg)), strings.Join(parts, "\n"), subsectionIndent)
}

func (r renderer) flagItem(flag string, spec component.Spec, doc docInfo, required bool, flagString string, short bool) string {
	maxLen := r.maxItemLength()
	if flagString == "" {
		flagString = fmt.Sprintf("--%s=%s", flag, r.Styler.Underline(strings.ToUpper(flag)))
	}
	if required {
		flagString += " (required)"
	}
	if short {
		flagString = fmt.Sprintf("-%c, %s", flag[0], flagString)
	}

	typ := argType(flag, spec)
	def, hasDefault := spec.Defaults[flag]
	if hasDefault && def == nil && typ != "" {
		typ = "Optional[" + typ + "]"
	}

	var parts []string
	if typ != "" {
		typ = "Type: " + typ
		parts = append(parts, ellipsisTruncate(typ, maxLen-utf8.RuneCountInString(typ), maxLen))
	}
	if hasDefault {
		d := "Default: " + repr(def)
		parts = append(parts, ellipsisTruncate(d, maxLen-utf8.RuneCountInString(d), maxLen))
	}
	if d := doc.arg(flag); d != "" {
		parts = append(parts, d)
	}
	return createItem(flagString, strings.Join(parts, "\n"), subsectionIndent)
}

func argType(arg string, spec component.Spec) string {
	t := spec.Types[arg]
	if t == "interface {}" {
		return ""
	}
	return t
}

// repr renders a default value the way it would be typed
func repr(v any) string {
	switch v.(type) {
	case nil, bool, int, float64, string, *big.Int, []any, literal.Tuple, literal.Set, literal.Dict:
		return literal.Format(v)
	}
	return fmt.Sprint(v)
}

func (r renderer) usageDetailsSections(c any, acts *actions) []section {
	var sections []section
	if !acts.groups.empty() {
		sections = append(sections, r.usageDetailsSection(&acts.groups))
	}
	if !acts.commands.empty() {
		sections = append(sections, r.usageDetailsSection(&acts.commands))
	}
	if !acts.values.empty() {
		sections = append(sections, r.valuesSection(c, &acts.values))
	}
	if !acts.indexes.empty() {
		sections = append(sections, section{"INDEXES", r.choicesSection("INDEX", acts.indexes.names)})
	}
	return sections
}

func (r renderer) usageDetailsSection(g *actionGroup) section {
	items := make([]string, len(g.names))
	for i, name := range g.names {
		member := g.members[i]
		summary := ""
		if !plainValue(member) {
			summary = parseDoc(r.Inspector.Doc(member)).Summary
		}
		items[i] = createItem(name, summary, 2)
	}
	return section{strings.ToUpper(g.plural), r.choicesSection(strings.ToUpper(g.name), items)}
}

// valuesSection lists values with the notes the owner documents for them
func (r renderer) valuesSection(c any, g *actionGroup) section {
	doc := parseDoc(r.Inspector.Doc(c))
	items := make([]string, len(g.names))
	for i, name := range g.names {
		items[i] = createItem(name, doc.arg(name), 2)
	}
	return section{"VALUES", r.choicesSection("VALUE", items)}
}

func (r renderer) choicesSection(name string, choices []string) string {
	return createItem(r.Styler.BoldUnderline(name)+" is one of the following:",
		"\n"+strings.Join(choices, "\n\n"), 1)
}

// plainValue reports whether c is a primitive or container whose own
// documentation says nothing about it
func plainValue(c any) bool {
	switch c.(type) {
	case nil, bool, int, float64, string, *big.Int, []any, literal.Tuple, literal.Set, literal.Dict:
		return true
	}
	return false
}

// stringSummary quotes s, truncated to fit available
func stringSummary(s string, available, lineLength int) string {
	const quotes = 2
	if utf8.RuneCountInString(s)+quotes <= available {
		return `"` + s + `"`
	}
	if available < quotes+len(ellipsis) {
		available = lineLength
	}
	return `"` + ellipsisTruncate(s, available-quotes, lineLength) + `"`
}

// stringDescription describes s as `The string "s"`
func stringDescription(s string, available, lineLength int) string {
	const prefix = "The string "
	const quotes = 2
	if available < len(prefix)+quotes+len(ellipsis) {
		available = lineLength
	}
	return prefix + `"` + ellipsisTruncate(s, available-len(prefix)-quotes, lineLength) + `"`
}
