// File: styles.go
// Title: Session Styles
// Description: lipgloss styles of the interactive session
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package interact

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary  = lipgloss.Color("#8B5CF6") // Violet
	ColorAccent   = lipgloss.Color("#06B6D4") // Cyan
	ColorError    = lipgloss.Color("#EF4444") // Red
	ColorMuted    = lipgloss.Color("#6B7280") // Gray
	ColorText     = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextDim  = lipgloss.Color("#64748B") // Slate 500
	ColorBorder   = lipgloss.Color("#334155") // Slate 700
	ColorSelected = lipgloss.Color("#10B981") // Emerald
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubTitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	EchoStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	CandidateStyle = lipgloss.NewStyle().
			Foreground(ColorSelected)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	TranscriptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)
