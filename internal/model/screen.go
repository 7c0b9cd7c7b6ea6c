package model

import "fmt"

// Screen is the closed set of views the app can show.
type Screen int

const (
	Home Screen = iota
	Favorites
)

// Screens lists every variant in tab order.
var Screens = []Screen{Home, Favorites}

func (s Screen) String() string {
	switch s {
	case Home:
		return "home"
	case Favorites:
		return "favorites"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// Next cycles to the following screen, wrapping around.
func (s Screen) Next() Screen { return Screens[(int(s)+1)%len(Screens)] }
