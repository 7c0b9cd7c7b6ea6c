// Package quotestore owns the fixed quote catalog and answers the two
// selection queries: a date-driven quote of the day and a random pick.
package quotestore

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Makepad-fr/qotd/internal/model"
)

// DayKeyLayout is the calendar-date key fed to the daily hash (YYYYMMDD).
const DayKeyLayout = "20060102"

var ErrNotFound = errors.New("quote not found")

// Store is an immutable view over a quote catalog. Safe to share.
type Store struct {
	quotes []model.Quote
	now    func() time.Time
	intn   func(n int) int
}

// Option tunes a Store at construction time.
type Option func(*Store)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRand draws random picks from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		if r != nil {
			s.intn = r.IntN
		}
	}
}

// New builds a Store over a private copy of quotes.
// It panics on an empty catalog: every query indexes into it.
func New(quotes []model.Quote, opts ...Option) *Store {
	if len(quotes) == 0 {
		panic("quotestore: catalog must not be empty")
	}
	s := &Store{
		quotes: append([]model.Quote(nil), quotes...),
		now:    time.Now,
		intn:   rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default returns a Store over the built-in catalog.
func Default(opts ...Option) *Store { return New(catalog, opts...) }

func (s *Store) Len() int { return len(s.quotes) }

// All returns a copy of the catalog in catalog order.
func (s *Store) All() []model.Quote { return append([]model.Quote(nil), s.quotes...) }

func (s *Store) ByID(id int) (model.Quote, error) {
	for _, q := range s.quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return model.Quote{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
}

// Contains reports whether q is a value-equal member of the catalog.
func (s *Store) Contains(q model.Quote) bool {
	for _, c := range s.quotes {
		if c == q {
			return true
		}
	}
	return false
}

// Random returns a uniformly chosen quote. Consecutive calls may repeat.
func (s *Store) Random() model.Quote { return s.quotes[s.intn(len(s.quotes))] }

// Today returns the quote of the day for the store's clock.
func (s *Store) Today() model.Quote { return s.TodayAt(s.now()) }

// TodayAt returns the quote of the day for the calendar date of t,
// read in t's own location. Time of day is ignored.
func (s *Store) TodayAt(t time.Time) model.Quote { return s.quotes[s.DayIndex(t)] }

// DayIndex maps the calendar date of t to a catalog index in [0, Len()).
func (s *Store) DayIndex(t time.Time) int {
	h := stringHash(DayKey(t)) % int32(len(s.quotes))
	if h < 0 {
		h = -h
	}
	return int(h)
}

// DayKey formats the calendar date of t as YYYYMMDD.
func DayKey(t time.Time) string { return t.Format(DayKeyLayout) }

// stringHash is the classic 31-multiplier polynomial hash with 32-bit
// wraparound (h = 31*h + c), computed over UTF-16 code units.
func stringHash(s string) int32 {
	var h int32
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			h = 31*h + int32(0xD800+(r>>10))
			h = 31*h + int32(0xDC00+(r&0x3FF))
			continue
		}
		h = 31*h + int32(r)
	}
	return h
}
