package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/qotd/internal/model"
)

// LongDateLayout renders dates like "Monday, October 19, 2026".
const LongDateLayout = "Monday, January 02, 2006"

func LongDate(t time.Time) string { return t.Format(LongDateLayout) }

// ProgressBar renders a bar with a count, e.g. "███░░░ 3/15".
func ProgressBar(t Theme, done, total, width int) string {
	denom := total
	if denom <= 0 {
		denom = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(denom) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFilled, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// Panel frames lines in the theme border.
func Panel(t Theme, lines []string) string {
	return t.Frame().Render(strings.Join(lines, "\n"))
}

// Card renders a quote centered in a frame of the given outer width.
// Widths too small to be useful are widened.
func Card(t Theme, q model.Quote, width int) string {
	inner := width - 4 // border + padding
	if inner < 20 {
		inner = 20
	}
	text := t.QuoteText.Width(inner).Align(lipgloss.Center).Render(`"` + q.Text + `"`)
	body := lipgloss.JoinVertical(lipgloss.Center,
		t.Accent.Render(t.QuoteMark),
		text,
		"",
		t.Muted.Render("— "+q.Author),
		"",
		t.Badge.Render(q.Category),
	)
	return t.Frame().Width(inner + 2).Align(lipgloss.Center).Render(body)
}

// Tabs renders the screen selector with the active screen highlighted.
func Tabs(t Theme, active model.Screen) string {
	labels := map[model.Screen]string{
		model.Home:      "1 Home",
		model.Favorites: "2 Favorites",
	}
	parts := make([]string, 0, len(model.Screens))
	for _, s := range model.Screens {
		style := t.Tab
		if s == active {
			style = t.TabActive
		}
		parts = append(parts, style.Render(labels[s]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Heart returns the favorite indicator for on/off.
func Heart(t Theme, on bool) string {
	if on {
		return t.Error.Render(t.HeartOn)
	}
	return t.Muted.Render(t.HeartOff)
}
