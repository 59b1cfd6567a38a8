package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultWordSource is the source label given to word list records that omit one.
const DefaultWordSource = "Default Source"

// UserWordSource labels words saved by the user.
const UserWordSource = "User"

// WordRecord is a vocabulary word from the bundled list, the remote list,
// or the user's own store.
type WordRecord struct {
	ID              uuid.UUID
	Headword        string
	Meaning         string
	ExampleSentence string
	Source          *string
	IsLearned       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SourceLabel returns the record's source or DefaultWordSource when unset.
func (w WordRecord) SourceLabel() string {
	if w.Source == nil || *w.Source == "" {
		return DefaultWordSource
	}
	return *w.Source
}

// PlaceholderWord is shown when no word list is available.
func PlaceholderWord() WordRecord {
	source := "Lexicology"
	return WordRecord{
		ID:              uuid.MustParse("6d1a2f3e-0c4b-4a8e-9f1d-5b7c2e8a9d01"),
		Headword:        "Serendipity",
		Meaning:         "The occurrence of events by chance in a happy or beneficial way",
		ExampleSentence: "Finding this beautiful café was a moment of pure serendipity.",
		Source:          &source,
	}
}
