package model

// DefaultCategory is used when a quote is built without one.
const DefaultCategory = "Inspiration"

// Quote is the domain model for a catalog entry.
// It is a comparable value: two quotes are the same quote only when
// every field matches, which is what favorites membership relies on.
type Quote struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// NewQuote builds a Quote, filling in DefaultCategory.
func NewQuote(id int, text, author string) Quote {
	return Quote{ID: id, Text: text, Author: author, Category: DefaultCategory}
}
