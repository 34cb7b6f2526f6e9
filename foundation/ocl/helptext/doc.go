// Package helptext renders help screens, usage lines and printed results.
//
// Package: helptext
// Title: Help and Usage Rendering
// Description: HelpText builds the full help screen of a component with
//              NAME, SYNOPSIS, DESCRIPTION, argument, flag and member
//              sections. UsageText builds the short usage shown after an
//              error. Result renders the final component of a run the way
//              it is printed: values as text, lists one item per line,
//              simple mappings as aligned key/value lines, and anything
//              else as its help screen.
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Documentation:
//
// Summaries and descriptions come from the component's documentation. The
// first paragraph is the summary. An "Args:" section documents arguments
// one per line:
//
//	Args:
//	  name: Who to greet.
//	  count: How often.
//
// Emphasis is rendered with lipgloss when color is enabled; see NewStyler.
package helptext
