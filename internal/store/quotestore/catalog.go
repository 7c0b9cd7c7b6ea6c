package quotestore

import "github.com/Makepad-fr/qotd/internal/model"

// catalog is the built-in, read-only set of quotes.
// Never hand it out directly; All copies it.
var catalog = []model.Quote{
	model.NewQuote(1, "The only way to do great work is to love what you do.", "Steve Jobs"),
	model.NewQuote(2, "Innovation distinguishes between a leader and a follower.", "Steve Jobs"),
	model.NewQuote(3, "Life is what happens to you while you're busy making other plans.", "John Lennon"),
	model.NewQuote(4, "The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"),
	model.NewQuote(5, "It is during our darkest moments that we must focus to see the light.", "Aristotle"),
	model.NewQuote(6, "Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill"),
	model.NewQuote(7, "The only impossible journey is the one you never begin.", "Tony Robbins"),
	model.NewQuote(8, "In the middle of difficulty lies opportunity.", "Albert Einstein"),
	model.NewQuote(9, "Believe you can and you're halfway there.", "Theodore Roosevelt"),
	model.NewQuote(10, "Don't watch the clock; do what it does. Keep going.", "Sam Levenson"),
	model.NewQuote(11, "Whether you think you can or you think you can't, you're right.", "Henry Ford"),
	model.NewQuote(12, "The way to get started is to quit talking and begin doing.", "Walt Disney"),
	model.NewQuote(13, "Don't be afraid to give up the good to go for the great.", "John D. Rockefeller"),
	model.NewQuote(14, "The best time to plant a tree was 20 years ago. The second best time is now.", "Chinese Proverb"),
	model.NewQuote(15, "Your limitation—it's only your imagination.", "Unknown"),
}

func init() {
	if len(catalog) == 0 {
		panic("quotestore: built-in catalog is empty")
	}
}
