package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

// UniqueHeadword returns prefix with a short random suffix, so parallel
// tests never collide on the unique headword index.
func UniqueHeadword(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedWord inserts a word with the given headword and returns it.
func SeedWord(t *testing.T, pool *pgxpool.Pool, headword string) domain.WordRecord {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	source := domain.UserWordSource
	w := domain.WordRecord{
		ID:              uuid.New(),
		Headword:        headword,
		Meaning:         "meaning of " + headword,
		ExampleSentence: "A sentence with " + headword + ".",
		Source:          &source,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, headword, headword_key, meaning, sentence, source, is_learned, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		w.ID, w.Headword, domain.DedupKey(w.Headword), w.Meaning, w.ExampleSentence, w.Source, w.IsLearned, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	return w
}

// ResetProgress clears learned words and the progress counters.
func ResetProgress(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	if _, err := pool.Exec(ctx, `DELETE FROM learned_words`); err != nil {
		t.Fatalf("testhelper: ResetProgress learned_words: %v", err)
	}
	if _, err := pool.Exec(ctx,
		`UPDATE learning_progress SET words_learned = 0, current_streak = 0, last_streak_check = NULL, updated_at = now() WHERE id = 1`,
	); err != nil {
		t.Fatalf("testhelper: ResetProgress learning_progress: %v", err)
	}
}
