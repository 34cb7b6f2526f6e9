// File: format.go
// Title: Text Formatting
// Description: Emphasis through lipgloss with a terminal check, indentation,
//              ellipsis truncation and wrapped joining of item lists.
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package helptext

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/msto63/zunder/foundation/utils/stringx"
)

const (
	// DefaultLineLength is the width help text is laid out for
	DefaultLineLength = 80

	sectionIndent    = 4
	subsectionIndent = 4
	itemsIndent      = 25
	ellipsis         = "..."
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styler renders emphasis. A nil or zero Styler renders plain text.
type Styler struct {
	enabled       bool
	bold          lipgloss.Style
	underline     lipgloss.Style
	boldUnderline lipgloss.Style
	errorStyle    lipgloss.Style
}

// NewStyler creates a Styler for output written to w. mode is auto, always
// or never; auto enables emphasis when w is a terminal and NO_COLOR is unset.
func NewStyler(w io.Writer, mode string) *Styler {
	if !ColorEnabled(w, mode) {
		return &Styler{}
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return &Styler{
		enabled:       true,
		bold:          r.NewStyle().Bold(true),
		underline:     r.NewStyle().Underline(true),
		boldUnderline: r.NewStyle().Bold(true).Underline(true),
		errorStyle:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

// ColorEnabled decides whether output to w gets emphasis
func ColorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Bold renders text in bold
func (s *Styler) Bold(text string) string {
	if s == nil || !s.enabled {
		return text
	}
	return s.bold.Render(text)
}

// Underline renders text underlined
func (s *Styler) Underline(text string) string {
	if s == nil || !s.enabled {
		return text
	}
	return s.underline.Render(text)
}

// BoldUnderline renders text bold and underlined
func (s *Styler) BoldUnderline(text string) string {
	if s == nil || !s.enabled {
		return text
	}
	return s.boldUnderline.Render(text)
}

// Error renders an error label
func (s *Styler) Error(text string) string {
	if s == nil || !s.enabled {
		return text
	}
	return s.errorStyle.Render(text)
}

// indent prefixes every non-empty line with spaces
func indent(text string, spaces int) string {
	return stringx.Indent(text, strings.Repeat(" ", spaces))
}

// ellipsisTruncate cuts text to available runes. When available is too
// small to hold the ellipsis, lineLength is used instead.
func ellipsisTruncate(text string, available, lineLength int) string {
	if available < len(ellipsis) {
		available = lineLength
	}
	return stringx.Truncate(text, available, ellipsis)
}

// wrappedJoin joins items with separator, starting a new line before an
// item that would pass width
func wrappedJoin(items []string, separator string, width int) []string {
	var lines []string
	current := ""
	for i, item := range items {
		n := utf8.RuneCountInString(current) + utf8.RuneCountInString(item)
		if i == len(items)-1 {
			if n <= width {
				current += item
			} else {
				lines = append(lines, strings.TrimRight(current, " "))
				current = item
			}
			continue
		}
		if n+len(separator) <= width {
			current += item + separator
		} else {
			lines = append(lines, strings.TrimRight(current, " "))
			current = item + separator
		}
	}
	return append(lines, current)
}

// createItem puts an indented description under name
func createItem(name, description string, spaces int) string {
	if description == "" {
		return name
	}
	return name + "\n" + indent(description, spaces)
}
