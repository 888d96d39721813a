// Package ui renders the export table and the end-of-run summary.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the table.
var (
	ColorRed     = lipgloss.Color("#FF0000")
	ColorGreen   = lipgloss.Color("#00FF00")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
)

// Styles holds the styles for one output. They are bound to a renderer so
// color detection follows the writer, not os.Stdout.
type Styles struct {
	Header  lipgloss.Style
	Border  lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Failed  lipgloss.Style
	Skipped lipgloss.Style
	Title   lipgloss.Style
}

// NewStyles builds the palette for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Bold(true).
			Foreground(ColorCyan),

		Border: r.NewStyle().
			Foreground(ColorDimGray),

		Prompt: r.NewStyle().
			Foreground(ColorYellow).
			Bold(true),

		Success: r.NewStyle().
			Foreground(ColorGreen),

		Failed: r.NewStyle().
			Foreground(ColorRed).
			Bold(true),

		Skipped: r.NewStyle().
			Foreground(ColorGray),

		Title: r.NewStyle().
			Bold(true).
			Foreground(ColorCyan),
	}
}
