package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Makepad-fr/qotd/internal/model"
)

type keyMap struct {
	Refresh   key.Binding
	Favorite  key.Binding
	Share     key.Binding
	Today     key.Binding
	Remove    key.Binding
	Up        key.Binding
	Down      key.Binding
	Next      key.Binding
	Home      key.Binding
	Favorites key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new quote")),
		Favorite:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Share:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today's quote")),
		Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch screen")),
		Home:      key.NewBinding(key.WithKeys("1", "h"), key.WithHelp("1/h", "home")),
		Favorites: key.NewBinding(key.WithKeys("2", "v"), key.WithHelp("2/v", "favorites")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// screenKeys narrows the help bar to the bindings that apply on one screen.
type screenKeys struct {
	keyMap
	screen model.Screen
}

func (k screenKeys) ShortHelp() []key.Binding {
	if k.screen == model.Favorites {
		return []key.Binding{k.Up, k.Down, k.Remove, k.Share, k.Next, k.Help, k.Quit}
	}
	return []key.Binding{k.Refresh, k.Favorite, k.Share, k.Next, k.Help, k.Quit}
}

func (k screenKeys) FullHelp() [][]key.Binding {
	nav := []key.Binding{k.Next, k.Home, k.Favorites, k.Back}
	misc := []key.Binding{k.Help, k.Quit}
	if k.screen == model.Favorites {
		return [][]key.Binding{{k.Up, k.Down, k.Remove, k.Share}, nav, misc}
	}
	return [][]key.Binding{{k.Refresh, k.Favorite, k.Share, k.Today}, nav, misc}
}
