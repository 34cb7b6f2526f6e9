// File: usage.go
// Title: Usage Text
// Description: UsageText renders the short usage shown after a failed
//              command: the command so far, what may follow it, the
//              available members and flags, and how to get full help.
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package helptext

import (
	"strings"

	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/trace"
)

// UsageText returns the usage for c reached through tr. tr may be nil.
func UsageText(c any, tr *trace.Trace, opts Options) string {
	r := renderer{opts.withDefaults()}

	command := ""
	hyphens := false
	if tr != nil {
		command = tr.Command(true)
		hyphens = tr.NeedsSeparatingHyphenHyphen("help", r.Inspector)
	}

	acts := groupActions(c, r.Inspector, r.Verbose)
	var continuations []string
	if possible := acts.possible(); len(possible) > 0 {
		continuations = append(continuations, "<"+strings.Join(possible, "|")+">")
	}

	var availability []string
	for _, g := range acts.all() {
		if !g.empty() {
			availability = append(availability, r.availabilityLine("available "+g.plural+":", g.names, 2))
		}
	}

	if spec, ok := r.Inspector.Signature(c); ok {
		if items := callableUsageItems(spec); len(items) > 0 {
			continuations = append(continuations, strings.Join(items, " "))
		} else if tr != nil {
			continuations = append(continuations, tr.Separator)
		}
		availability = append(availability, r.callableAvailabilityLines(spec)...)
	}

	continued := command
	if len(continuations) > 0 {
		continued += " " + strings.Join(continuations, " | ")
	}
	help := command + " --help"
	if hyphens {
		help = command + " -- --help"
	}

	return "Usage: " + continued + "\n" +
		strings.Join(availability, "") + "\n" +
		"For detailed information on this command, run:\n" +
		"  " + help
}

func callableUsageItems(spec component.Spec) []string {
	var items []string
	for _, arg := range spec.RequiredArgs() {
		if spec.AcceptsPositional {
			items = append(items, strings.ToUpper(arg))
		} else {
			items = append(items, "--"+arg+"="+strings.ToUpper(arg))
		}
	}
	if hasFlags(spec) {
		items = append(items, "<flags>")
	}
	if spec.VarArgs != "" {
		items = append(items, "["+strings.ToUpper(spec.VarArgs)+"]...")
	}
	return items
}

func (r renderer) callableAvailabilityLines(spec component.Spec) []string {
	var optional, required []string
	for _, a := range argsWithDefaults(spec) {
		optional = append(optional, "--"+a)
	}
	for _, k := range spec.KwOnly {
		if spec.HasDefault(k) {
			optional = append(optional, "--"+k)
		} else {
			required = append(required, "--"+k)
		}
	}

	var lines []string
	if len(optional) > 0 {
		lines = append(lines, r.availabilityLine("optional flags:", optional, 2))
	}
	if len(required) > 0 {
		lines = append(lines, r.availabilityLine("required flags:", required, 2))
	}
	if spec.VarKw != "" {
		header := "flags are accepted"
		if len(optional) > 0 || len(required) > 0 {
			header = "additional flags are accepted"
		}
		lines = append(lines, r.availabilityLine(header, nil, 2))
	}
	return lines
}

// availabilityLine puts header at headerIndent and the wrapped items in a
// column starting at itemsIndent
func (r renderer) availabilityLine(header string, items []string, headerIndent int) string {
	itemsText := indent(strings.Join(wrappedJoin(items, " | ", r.LineLength-itemsIndent), "\n"), itemsIndent)
	indentedHeader := strings.Repeat(" ", headerIndent) + header
	if len(indentedHeader) < len(itemsText) {
		return indentedHeader + itemsText[len(indentedHeader):] + "\n"
	}
	return indentedHeader + "\n"
}
