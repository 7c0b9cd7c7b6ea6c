package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + borders.
// Renderers either take a Theme explicitly or pull from Current().
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	QuoteText, Badge                              lipgloss.Style
	Tab, TabActive                                lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	QuoteMark           string
	HeartOn, HeartOff   string
	SymOK, SymFail      string
	BarFilled, BarEmpty string
}

// ThemeNames lists the accepted theme names.
var ThemeNames = []string{"classic", "neon", "mono"}

var current = Lookup("classic")

// SetTheme switches the process-wide theme. Unknown names fall back to classic.
func SetTheme(name string) { current = Lookup(name) }

// Current returns the process-wide theme.
func Current() Theme { return current }

// Lookup builds the named theme. Unknown names yield classic.
func Lookup(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			QuoteText:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("15")),
			Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")).Padding(0, 1),
			Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1),
			TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Underline(true).Padding(0, 1),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			QuoteMark:   "❝",
			HeartOn:     "♥", HeartOff: "♡",
			SymOK: "✔", SymFail: "✖",
			BarFilled: "█", BarEmpty: "░",
		}
	case "mono":
		return Theme{
			Name:        "mono",
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle(),
			Accent:      lipgloss.NewStyle(),
			Success:     lipgloss.NewStyle(),
			Error:       lipgloss.NewStyle(),
			Pending:     lipgloss.NewStyle(),
			QuoteText:   lipgloss.NewStyle(),
			Badge:       lipgloss.NewStyle(),
			Tab:         lipgloss.NewStyle().Padding(0, 1),
			TabActive:   lipgloss.NewStyle().Reverse(true).Padding(0, 1),
			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},
			QuoteMark:   "\"",
			HeartOn:     "[*]", HeartOff: "[ ]",
			SymOK: "ok", SymFail: "error:",
			BarFilled: "#", BarEmpty: "-",
		}
	}
	// classic: indigo/violet palette
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6366F1")),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		QuoteText:   lipgloss.NewStyle().Italic(true),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("#6366F1")).Background(lipgloss.Color("#E0E7FF")).Padding(0, 1),
		Tab:         lipgloss.NewStyle().Faint(true).Padding(0, 1),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6366F1")).Underline(true).Padding(0, 1),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		QuoteMark:   "❝",
		HeartOn:     "♥", HeartOff: "♡",
		SymOK: "✔", SymFail: "✖",
		BarFilled: "█", BarEmpty: "░",
	}
}

// Frame is the bordered box every panel and card sits in.
func (t Theme) Frame() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}
