package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette roles, adapted to light and dark terminals
var (
	accent  = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"}
	applied = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	outside = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	failure = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	dimmed  = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	text    = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F3F4F6"}
	bar     = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#1F2937"}
)

// labelWidth keeps the inputs aligned in one column
const labelWidth = 14

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)
	SubtitleStyle = lipgloss.NewStyle().Foreground(dimmed).Underline(true)

	LabelStyle        = lipgloss.NewStyle().Foreground(dimmed).Width(labelWidth)
	FocusedLabelStyle = LabelStyle.Foreground(accent).Bold(true)

	// Event rows are colored by the bound state of the change
	EventStyle         = lipgloss.NewStyle().Foreground(text).PaddingLeft(2)
	AppliedEventStyle  = EventStyle.Foreground(applied)
	RejectedEventStyle = EventStyle.Foreground(outside)

	ErrorMessageStyle = lipgloss.NewStyle().Foreground(failure).Bold(true)
	StatusBarStyle    = lipgloss.NewStyle().Background(bar).Foreground(text).Padding(0, 1).MarginTop(1)
	HelpStyle         = lipgloss.NewStyle().Foreground(dimmed).MarginTop(1)
)

func RenderTitle(title string) string {
	return TitleStyle.Render("¤ " + title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("error: " + err)
}
