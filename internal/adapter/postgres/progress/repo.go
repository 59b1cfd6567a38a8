// Package progress stores the learning progress singleton and the set of
// learned word IDs.
package progress

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lexicology-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

// progressRowID is the primary key of the only learning_progress row.
const progressRowID = 1

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides learning progress persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get loads the counters together with every learned word ID.
func (r *Repo) Get(ctx context.Context) (*domain.LearningProgress, error) {
	return r.get(ctx, false)
}

// GetForUpdate is Get with the progress row locked until the surrounding
// transaction ends. Concurrent read-modify-write callers serialize on it.
func (r *Repo) GetForUpdate(ctx context.Context) (*domain.LearningProgress, error) {
	return r.get(ctx, true)
}

func (r *Repo) get(ctx context.Context, lock bool) (*domain.LearningProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := psql.
		Select("words_learned", "current_streak", "last_streak_check").
		From("learning_progress").
		Where(sq.Eq{"id": progressRowID})
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get progress query: %w", err)
	}

	p := &domain.LearningProgress{LearnedWordIDs: make(map[uuid.UUID]struct{})}
	if err := q.QueryRow(ctx, sql, args...).Scan(&p.WordsLearned, &p.CurrentStreak, &p.LastStreakCheck); err != nil {
		return nil, postgres.MapError(err, "learning progress", progressRowID)
	}

	sql, args, err = psql.Select("word_id").From("learned_words").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build learned words query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query learned words: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan learned word: %w", err)
		}
		p.LearnedWordIDs[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate learned words: %w", err)
	}

	return p, nil
}

// Save writes the counters. Learned word IDs are written by AddLearned.
func (r *Repo) Save(ctx context.Context, p *domain.LearningProgress) error {
	sql, args, err := psql.Update("learning_progress").
		Set("words_learned", p.WordsLearned).
		Set("current_streak", p.CurrentStreak).
		Set("last_streak_check", p.LastStreakCheck).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": progressRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save progress query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "learning progress", progressRowID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("learning progress %d: %w", progressRowID, domain.ErrNotFound)
	}
	return nil
}

// AddLearned records wordID as learned. It reports false when the word was
// already recorded.
func (r *Repo) AddLearned(ctx context.Context, wordID uuid.UUID, at time.Time) (bool, error) {
	sql, args, err := psql.Insert("learned_words").
		Columns("word_id", "learned_at").
		Values(wordID, at).
		Suffix("ON CONFLICT (word_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build add learned query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "learned word", wordID)
	}
	return tag.RowsAffected() == 1, nil
}
