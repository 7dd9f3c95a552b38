package diagnostics

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorError = lipgloss.Color("#EF4444") // Red
	ColorNote  = lipgloss.Color("#10B981") // Emerald
	ColorMuted = lipgloss.Color("#6B7280") // Gray
)

var (
	ErrorLabelStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorNote)

	PosStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

func render(diag Diag) string {
	if !diag.IsError() {
		return NoteStyle.Render(diag.Message)
	}
	label := ErrorLabelStyle.Render("Error:")
	if diag.Pos.Column == 0 {
		return label + "\t" + diag.Message
	}
	return label + "\t" + diag.Message + " " + PosStyle.Render(diag.Pos.String())
}
