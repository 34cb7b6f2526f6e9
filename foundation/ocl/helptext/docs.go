// File: docs.go
// Title: Documentation Parsing
// Description: Splits component documentation into a summary, a
//              description and per-argument notes from an "Args:" section.
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package helptext

import (
	"regexp"
	"strings"

	"github.com/msto63/zunder/foundation/utils/stringx"
)

// docInfo is parsed documentation
type docInfo struct {
	Summary     string
	Description string
	// Args holds argument notes in documented order
	Args []argDoc
}

type argDoc struct {
	Name        string
	Description string
}

var (
	argsHeader    = regexp.MustCompile(`^(Args|Arguments|Parameters|Params|Flags):\s*$`)
	otherHeader   = regexp.MustCompile(`^(Returns|Return|Raises|Yields|Examples|Example|Notes|Note|See Also):\s*$`)
	argLine       = regexp.MustCompile(`^\*{0,2}([A-Za-z_][\w-]*)\s*(\([^)]*\))?\s*:\s*(.*)$`)
	leadingSpaces = regexp.MustCompile(`^\s*`)
)

// arg returns the note for name
func (d docInfo) arg(name string) string {
	for _, a := range d.Args {
		if a.Name == name {
			return a.Description
		}
	}
	return ""
}

func parseDoc(doc string) docInfo {
	var info docInfo
	lines := cleanLines(doc)
	if len(lines) == 0 {
		return info
	}

	var body []string
	section := ""
	argIndent := -1
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		depth := len(leadingSpaces.FindString(line))

		switch {
		case depth == 0 && argsHeader.MatchString(trimmed):
			section, argIndent = "args", -1
			continue
		case depth == 0 && otherHeader.MatchString(trimmed):
			section = "other"
			continue
		case depth == 0 && trimmed != "" && section != "":
			section = ""
		}

		switch section {
		case "":
			body = append(body, trimmed)
		case "args":
			if trimmed == "" {
				continue
			}
			if argIndent < 0 {
				argIndent = depth
			}
			if m := argLine.FindStringSubmatch(trimmed); m != nil && depth == argIndent {
				info.Args = append(info.Args, argDoc{Name: m[1], Description: m[3]})
				continue
			}
			if n := len(info.Args); n > 0 {
				info.Args[n-1].Description = strings.TrimSpace(info.Args[n-1].Description + " " + trimmed)
			}
		}
	}

	paragraphs := splitParagraphs(body)
	if len(paragraphs) > 0 {
		info.Summary = strings.Join(paragraphs[0], " ")
	}
	if len(paragraphs) > 1 {
		rest := make([]string, 0, len(paragraphs)-1)
		for _, p := range paragraphs[1:] {
			rest = append(rest, strings.Join(p, "\n"))
		}
		info.Description = strings.Join(rest, "\n\n")
	}
	return info
}

// cleanLines trims the first line and removes the indentation shared by
// the lines after it
func cleanLines(doc string) []string {
	lines := stringx.SplitLines(strings.TrimSpace(doc))
	if len(lines) == 0 {
		return nil
	}
	lines[0] = strings.TrimSpace(lines[0])
	common := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n := len(leadingSpaces.FindString(line)); common < 0 || n < common {
			common = n
		}
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			lines[i] = ""
		} else if common > 0 {
			lines[i] = lines[i][common:]
		}
	}
	return lines
}

// splitParagraphs groups lines into blank-line separated paragraphs
func splitParagraphs(lines []string) [][]string {
	var out [][]string
	var current []string
	for _, line := range lines {
		if line == "" {
			if len(current) > 0 {
				out = append(out, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}
