package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/qotd/internal/model"
	"github.com/Makepad-fr/qotd/internal/ui"
)

// favoriteItem adapts a Quote to bubbles/list.Item.
type favoriteItem struct {
	q model.Quote
}

func (i favoriteItem) Title() string       { return i.q.Text }
func (i favoriteItem) Description() string { return i.q.Author }
func (i favoriteItem) FilterValue() string { return i.q.Text }

// favoriteDelegate renders each favorite as quote line + author line.
type favoriteDelegate struct {
	theme ui.Theme
}

func (d favoriteDelegate) Height() int                               { return 2 }
func (d favoriteDelegate) Spacing() int                              { return 1 }
func (d favoriteDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d favoriteDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(favoriteItem)
	if !ok {
		return
	}
	width := m.Width() - 4
	if width < 10 {
		width = 10
	}
	text := truncate(`"`+it.q.Text+`"`, width)

	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Accent.Render("> ")
		text = d.theme.Title.Render(text)
	}
	fmt.Fprintln(w, prefix+text)
	fmt.Fprint(w, "  "+d.theme.Muted.Render("— "+it.q.Author))
}

func newFavoritesList(theme ui.Theme) list.Model {
	l := list.New(nil, favoriteDelegate{theme: theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.Styles.PaginationStyle = theme.Muted
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	return l
}

func toItems(favs []model.Quote) []list.Item {
	items := make([]list.Item, 0, len(favs))
	for _, q := range favs {
		items = append(items, favoriteItem{q: q})
	}
	return items
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return strings.TrimSpace(string(r[:width-1])) + "…"
}
