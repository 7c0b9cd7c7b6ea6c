// Package state holds the session state the front end renders: the active
// screen, the favorites list and the quote currently on display.
//
// State is owned by a single event loop and is not safe for concurrent use.
package state

import (
	"slices"

	"github.com/Makepad-fr/qotd/internal/model"
)

// Source supplies quotes to the session.
type Source interface {
	Today() model.Quote
	Random() model.Quote
}

type State struct {
	src       Source
	screen    model.Screen
	favorites []model.Quote
	current   model.Quote
}

// New starts a session on the Home screen showing today's quote.
func New(src Source) *State {
	return &State{
		src:     src,
		screen:  model.Home,
		current: src.Today(),
	}
}

func (s *State) Screen() model.Screen { return s.screen }

func (s *State) Current() model.Quote { return s.current }

// Favorites returns the favorites in insertion order. The slice is a copy.
func (s *State) Favorites() []model.Quote { return slices.Clone(s.favorites) }

// Navigate switches screens. Favorites and the current quote are untouched.
func (s *State) Navigate(to model.Screen) { s.screen = to }

// Refresh replaces the current quote with a random one and returns it.
func (s *State) Refresh() model.Quote {
	s.current = s.src.Random()
	return s.current
}

// ShowToday puts today's quote back on display.
func (s *State) ShowToday() model.Quote {
	s.current = s.src.Today()
	return s.current
}

// AddFavorite appends q unless a value-equal entry is already present.
// It reports whether the list changed.
func (s *State) AddFavorite(q model.Quote) bool {
	if s.IsFavorite(q) {
		return false
	}
	s.favorites = append(s.favorites, q)
	return true
}

// RemoveFavorite drops the value-equal entry for q, keeping the order of
// the rest. It reports whether the list changed.
func (s *State) RemoveFavorite(q model.Quote) bool {
	i := slices.Index(s.favorites, q)
	if i < 0 {
		return false
	}
	s.favorites = slices.Delete(s.favorites, i, i+1)
	return true
}

// ToggleFavorite adds or removes q and returns whether q is now a favorite.
func (s *State) ToggleFavorite(q model.Quote) bool {
	if s.RemoveFavorite(q) {
		return false
	}
	s.AddFavorite(q)
	return true
}

func (s *State) IsFavorite(q model.Quote) bool { return slices.Contains(s.favorites, q) }
