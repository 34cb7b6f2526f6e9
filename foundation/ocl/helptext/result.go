// File: result.go
// Title: Result Rendering
// Description: Result renders the final component of a run as printed
//              output. Values print as text, lists and sets one item per
//              line, tuples on one line, simple mappings as aligned
//              key/value lines, and other components as their help screen.
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package helptext

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/foundation/ocl/literal"
	"github.com/msto63/zunder/foundation/ocl/trace"
)

// Result renders result for printing. It reports false when nothing should
// be printed: for nil and for empty lists.
func Result(result any, tr *trace.Trace, opts Options) (string, bool) {
	r := renderer{opts.withDefaults()}
	insp := r.Inspector

	switch x := result.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	case literal.Tuple:
		return OneLine(x), true
	case literal.Set:
		return oneLinePerItem(x), len(x) > 0
	}

	switch insp.Classify(result) {
	case component.KindSequence:
		items := insp.Elements(result)
		return oneLinePerItem(items), len(items) > 0
	case component.KindMapping:
		if entries := insp.Entries(result); isSimpleGroup(entries, insp) {
			return dictAsString(entries, r.Verbose), true
		}
	}
	if isValue(result) {
		return component.Stringify(result), true
	}
	return HelpText(result, tr, opts), true
}

// PrintResult writes the rendered result and a trailing newline to w
func PrintResult(w io.Writer, result any, tr *trace.Trace, opts Options) error {
	text, ok := Result(result, tr, opts)
	if !ok {
		return nil
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func oneLinePerItem(items []any) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = OneLine(item)
	}
	return strings.Join(lines, "\n")
}

// dictAsString aligns values after the longest visible key
func dictAsString(entries []component.Entry, verbose bool) string {
	type line struct{ key, value string }
	var lines []line
	longest := 0
	for _, e := range entries {
		key := component.Stringify(e.Key)
		if !verbose && strings.HasPrefix(key, "_") {
			continue
		}
		lines = append(lines, line{key, OneLine(e.Value)})
		if n := utf8.RuneCountInString(key); n > longest {
			longest = n
		}
	}
	if len(lines) == 0 {
		return "{}"
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fmt.Sprintf("%-*s %s", longest+1, l.key+":", l.value)
	}
	return strings.Join(out, "\n")
}

// OneLine renders v on a single line: strings as they are, other values as
// JSON when they have a JSON form, and as text otherwise
func OneLine(v any) string {
	if s, ok := v.(string); ok {
		return strings.ReplaceAll(s, "\n", " ")
	}
	if s, err := jsonLine(v); err == nil {
		return s
	}
	return strings.ReplaceAll(component.Stringify(v), "\n", " ")
}
