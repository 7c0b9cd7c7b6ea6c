// Package tui is the terminal front end: a Bubble Tea program with a Home
// screen showing one quote and a Favorites screen listing saved quotes.
// All state changes go through state.State.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/qotd/internal/model"
	"github.com/Makepad-fr/qotd/internal/share"
	"github.com/Makepad-fr/qotd/internal/state"
	"github.com/Makepad-fr/qotd/internal/ui"
)

const (
	appTitle = "Quote of the Day"
	tagline  = "Start your day with inspiration ✨"

	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures the program. Zero values get sensible defaults.
type Options struct {
	Theme       ui.Theme
	Sharer      share.Sharer
	Logger      *log.Logger
	Now         func() time.Time
	CatalogSize int
	AltScreen   bool
}

// sharedMsg reports the outcome of a share handoff.
type sharedMsg struct {
	quote model.Quote
	err   error
}

// Model implements tea.Model on top of a session State.
type Model struct {
	st     *state.State
	keys   keyMap
	help   help.Model
	list   list.Model
	theme  ui.Theme
	sharer share.Sharer
	logger *log.Logger
	now    func() time.Time
	total  int

	status    string
	statusErr bool

	width, height int
}

func New(st *state.State, opt Options) Model {
	if opt.Theme.Name == "" {
		opt.Theme = ui.Current()
	}
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard)
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Sharer == nil {
		opt.Sharer = share.NewClipboard()
	}
	h := help.New()
	h.Styles.ShortKey = opt.Theme.Accent
	h.Styles.FullKey = opt.Theme.Accent

	m := Model{
		st:     st,
		keys:   defaultKeys(),
		help:   h,
		list:   newFavoritesList(opt.Theme),
		theme:  opt.Theme,
		sharer: opt.Sharer,
		logger: opt.Logger,
		now:    opt.Now,
		total:  opt.CatalogSize,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.syncFavorites()
	m.resize()
	return m
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, st *state.State, opt Options) error {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opt.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(st, opt), progOpts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return tea.SetWindowTitle(appTitle) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case sharedMsg:
		if msg.err != nil {
			m.setStatus("Share failed: "+msg.err.Error(), true)
			m.logger.Warn("share failed", "id", msg.quote.ID, "err", msg.err)
		} else {
			m.setStatus("Quote shared", false)
			m.logger.Debug("shared", "id", msg.quote.ID)
		}
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.navigate(m.st.Screen().Next())
			return m, nil
		case key.Matches(msg, m.keys.Home):
			m.navigate(model.Home)
			return m, nil
		case key.Matches(msg, m.keys.Favorites):
			m.navigate(model.Favorites)
			return m, nil
		case key.Matches(msg, m.keys.Back):
			if m.st.Screen() == model.Home {
				return m, tea.Quit
			}
			m.navigate(model.Home)
			return m, nil
		}
		if m.st.Screen() == model.Home {
			return m.updateHome(msg)
		}
		return m.updateFavorites(msg)
	}

	if m.st.Screen() == model.Favorites {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		q := m.st.Refresh()
		m.logger.Debug("refresh", "id", q.ID)
	case key.Matches(msg, m.keys.Today):
		q := m.st.ShowToday()
		m.logger.Debug("today", "id", q.ID)
	case key.Matches(msg, m.keys.Favorite):
		q := m.st.Current()
		if m.st.ToggleFavorite(q) {
			m.setStatus("Added to favorites", false)
			m.logger.Debug("favorite added", "id", q.ID)
		} else {
			m.setStatus("Removed from favorites", false)
			m.logger.Debug("favorite removed", "id", q.ID)
		}
		m.syncFavorites()
	case key.Matches(msg, m.keys.Share):
		return m, m.shareCmd(m.st.Current())
	}
	return m, nil
}

func (m Model) updateFavorites(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel, ok := m.list.SelectedItem().(favoriteItem)
	switch {
	case key.Matches(msg, m.keys.Remove):
		if ok && m.st.RemoveFavorite(sel.q) {
			m.setStatus("Removed from favorites", false)
			m.logger.Debug("favorite removed", "id", sel.q.ID)
			m.syncFavorites()
		}
		return m, nil
	case key.Matches(msg, m.keys.Share):
		if ok {
			return m, m.shareCmd(sel.q)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) navigate(to model.Screen) {
	if m.st.Screen() == to {
		return
	}
	m.st.Navigate(to)
	m.logger.Debug("navigate", "to", to)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

// syncFavorites rebuilds the list from state, keeping the cursor in range.
func (m *Model) syncFavorites() {
	favs := m.st.Favorites()
	idx := m.list.Index()
	m.list.SetItems(toItems(favs))
	if idx >= len(favs) {
		idx = len(favs) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m *Model) resize() {
	// header (3) + title/meter (3) + status (1) + help + frame (2)
	helpLines := lipgloss.Height(m.help.View(m.helpKeys()))
	h := m.height - 9 - helpLines
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.innerWidth(), h)
}

func (m Model) innerWidth() int {
	w := m.width - 4
	if w < 24 {
		w = 24
	}
	return w
}

func (m Model) helpKeys() screenKeys { return screenKeys{keyMap: m.keys, screen: m.st.Screen()} }

func (m Model) shareCmd(q model.Quote) tea.Cmd {
	sharer := m.sharer
	return func() tea.Msg {
		return sharedMsg{quote: q, err: sharer.Share(context.Background(), q)}
	}
}

func (m Model) View() string {
	t := m.theme
	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		t.Title.Render(appTitle), "  ", ui.Tabs(t, m.st.Screen()))
	b.WriteString(header + "\n")
	b.WriteString(t.Muted.Render(ui.LongDate(m.now())) + "\n\n")

	if m.st.Screen() == model.Favorites {
		b.WriteString(m.favoritesView())
	} else {
		b.WriteString(m.homeView())
	}

	b.WriteString("\n")
	if m.status != "" {
		style := t.Success
		if m.statusErr {
			style = t.Error
		}
		b.WriteString(style.Render(m.status))
	}
	b.WriteString("\n" + m.help.View(m.helpKeys()))

	return t.Frame().Render(b.String())
}

func (m Model) homeView() string {
	t := m.theme
	q := m.st.Current()
	fav := m.st.IsFavorite(q)

	label := "press f to save"
	if fav {
		label = "in your favorites"
	}
	lines := []string{
		ui.Card(t, q, m.innerWidth()),
		ui.Heart(t, fav) + " " + t.Muted.Render(label),
		"",
		t.Muted.Render(tagline),
	}
	return strings.Join(lines, "\n")
}

func (m Model) favoritesView() string {
	t := m.theme
	favs := m.st.Favorites()

	var b strings.Builder
	b.WriteString(t.Title.Render("Your Favorite Quotes") + "\n")
	if m.total > 0 {
		b.WriteString(t.Muted.Render(ui.ProgressBar(t, len(favs), m.total, 20)) + "\n")
	}
	b.WriteString("\n")

	if len(favs) == 0 {
		b.WriteString(t.Muted.Render("No favorite quotes yet") + "\n")
		b.WriteString(t.Muted.Render("Add quotes to favorites from the home screen"))
		return b.String()
	}
	b.WriteString(m.list.View())
	return b.String()
}
