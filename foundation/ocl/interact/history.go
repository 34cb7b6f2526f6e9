// File: history.go
// Title: Input History
// Description: Bounded list of evaluated lines, optionally kept in a JSON
//              file between sessions.
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package interact

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	zderror "github.com/msto63/zunder/foundation/core/error"
)

// History keeps the most recent input lines, oldest first
type History struct {
	entries []string
	size    int
}

// NewHistory creates a history holding at most size lines; size <= 0 keeps
// everything
func NewHistory(size int) *History {
	return &History{size: size}
}

// LoadHistory reads a history file. A missing file gives an empty history.
func LoadHistory(path string, size int) (*History, error) {
	h := NewHistory(size)
	if path == "" {
		return h, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return h, nil
	}
	if err != nil {
		return h, zderror.Wrap(err, "failed to read history").
			WithCode(zderror.CodeConfigError).
			WithSeverity(zderror.SeverityMedium).
			WithDetail("path", path).
			WithOperation("interact.LoadHistory")
	}
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return h, zderror.Wrap(err, "failed to parse history").
			WithCode(zderror.CodeConfigError).
			WithSeverity(zderror.SeverityMedium).
			WithDetail("path", path).
			WithOperation("interact.LoadHistory")
	}
	for _, e := range entries {
		h.Add(e)
	}
	return h, nil
}

// Add appends line unless it is empty or repeats the latest entry
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if h.size > 0 && len(h.entries) > h.size {
		h.entries = h.entries[len(h.entries)-h.size:]
	}
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// At returns entry i, oldest first
func (h *History) At(i int) string {
	return h.entries[i]
}

// Entries returns a copy of the entries
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Save writes the history to path, creating its directory
func (h *History) Save(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zderror.Wrap(err, "failed to create history directory").
			WithCode(zderror.CodeConfigError).
			WithSeverity(zderror.SeverityMedium).
			WithDetail("path", path).
			WithOperation("interact.History.Save")
	}
	data, err := json.MarshalIndent(h.entries, "", "  ")
	if err != nil {
		return zderror.Wrap(err, "failed to encode history").
			WithCode(zderror.CodeInternal).
			WithSeverity(zderror.SeverityMedium).
			WithOperation("interact.History.Save")
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return zderror.Wrap(err, "failed to write history").
			WithCode(zderror.CodeConfigError).
			WithSeverity(zderror.SeverityMedium).
			WithDetail("path", path).
			WithOperation("interact.History.Save")
	}
	return nil
}
