package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuote_DefaultsCategory(t *testing.T) {
	q := NewQuote(1, "text", "author")
	assert.Equal(t, DefaultCategory, q.Category)
}

func TestQuote_EqualIsByValue(t *testing.T) {
	a := NewQuote(1, "The only way to do great work is to love what you do.", "Steve Jobs")
	b := Quote{ID: 1, Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Category: "Inspiration"}
	assert.Equal(t, a, b)

	b.Category = "Work"
	assert.NotEqual(t, a, b, "category is part of identity")
}

func TestScreen_NextWraps(t *testing.T) {
	assert.Equal(t, Favorites, Home.Next())
	assert.Equal(t, Home, Favorites.Next())
}

func TestScreen_String(t *testing.T) {
	assert.Equal(t, "home", Home.String())
	assert.Equal(t, "favorites", Favorites.String())
	assert.Equal(t, "screen(7)", Screen(7).String())
}
