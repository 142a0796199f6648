// ============================================================================
// currencyedit - Currency input for the terminal
// ============================================================================
//
// Package:     currencyinput
// Description: Styles for the currency input component
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package currencyinput

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - Same as the other TUI components for consistency
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
	ColorMuted   = lipgloss.Color("#94A3B8") // Slate 400
	ColorDimmed  = lipgloss.Color("#374151") // Dark Gray
)

// Styles controls how a currency input renders
type Styles struct {
	Text  lipgloss.Style
	Ghost lipgloss.Style
	Glyph lipgloss.Style

	// Frame wraps the whole line; FocusedFrame replaces it while focused
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	InvalidFrame lipgloss.Style
}

// DefaultStyles returns the standard look: faint ghost zeros and a bordered
// frame that turns red while the value is out of bounds
func DefaultStyles() Styles {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDimmed).
		Padding(0, 1)

	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(ColorText),
		Ghost: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Faint(true),
		Glyph: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Frame:        frame,
		FocusedFrame: frame.BorderForeground(ColorPrimary),
		InvalidFrame: frame.BorderForeground(ColorError),
	}
}
