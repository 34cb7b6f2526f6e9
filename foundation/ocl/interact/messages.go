// File: messages.go
// Title: Session Messages
// Description: Message types for asynchronous evaluation in the session
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package interact

// evaluatedMsg is sent when a line has been evaluated
type evaluatedMsg struct {
	line   string
	output Output
}

// copiedMsg is sent after the last result was copied to the clipboard
type copiedMsg struct {
	err error
}
