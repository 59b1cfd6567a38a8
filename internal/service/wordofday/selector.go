package wordofday

import (
	"time"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

// Selector picks one word per calendar day, rotating through the list in
// order starting at Epoch.
type Selector struct {
	Epoch    time.Time
	Location *time.Location
}

// Select returns the word for date. Dates before Epoch map to the first word.
func (s Selector) Select(date time.Time, words []domain.WordRecord) (domain.WordRecord, error) {
	if len(words) == 0 {
		return domain.WordRecord{}, domain.ErrEmptyWordList
	}
	return words[s.Index(date, len(words))], nil
}

// Index returns the list position selected for date in a list of n words.
// n must be positive.
func (s Selector) Index(date time.Time, n int) int {
	offset := domain.CalendarDaysBetween(s.Epoch, date, s.Location)
	if offset < 0 {
		offset = 0
	}
	return offset % n
}
