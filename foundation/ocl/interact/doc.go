// Package interact runs an interactive session over the variables of a
// finished command.
//
// Package: interact
// Title: Interactive Session
// Description: A read-eval-print loop built on bubbletea. Each input line is
//              split like a shell command and run through the engine against
//              the session variables (the command name, component, result,
//              trace and self). Results are rendered the way the command
//              line renders them and collected in a scrollable transcript.
//              Session holds the evaluation logic without any terminal, so
//              it can be driven directly.
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Keys:
//
//	enter      evaluate the input line
//	up/down    walk the input history
//	tab        complete the last word
//	ctrl+y     copy the last result to the clipboard
//	ctrl+l     clear the transcript
//	ctrl+c, :q leave the session
//
// The last successful result of the session is available as "_".
package interact
