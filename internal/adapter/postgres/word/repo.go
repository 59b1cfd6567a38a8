// Package word implements the saved-word repository on PostgreSQL.
package word

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/lexicology-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

const table = "words"

var columns = []string{
	"id", "headword", "meaning", "sentence", "source", "is_learned", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WordRecord, error) {
	query := psql.Select(columns...).From(table).Where(sq.Eq{"id": id})

	w, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	return w, nil
}

// GetByHeadword returns the word whose headword matches case-insensitively.
func (r *Repo) GetByHeadword(ctx context.Context, headword string) (*domain.WordRecord, error) {
	key := domain.DedupKey(headword)
	query := psql.Select(columns...).From(table).Where(sq.Eq{"headword_key": key})

	w, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "word", key)
	}
	return w, nil
}

// List returns all saved words, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.WordRecord, error) {
	query := psql.Select(columns...).From(table).OrderBy("created_at DESC", "id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	words := make([]domain.WordRecord, 0)
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}

	return words, nil
}

// ExistingKeys returns which of the given headwords are already stored,
// keyed by domain.DedupKey.
func (r *Repo) ExistingKeys(ctx context.Context, headwords []string) (map[string]struct{}, error) {
	found := make(map[string]struct{})
	if len(headwords) == 0 {
		return found, nil
	}

	keys := make([]string, 0, len(headwords))
	for _, h := range headwords {
		keys = append(keys, domain.DedupKey(h))
	}

	sql, args, err := psql.Select("headword_key").From(table).Where(sq.Eq{"headword_key": keys}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build existing keys query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query existing keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		found[key] = struct{}{}
	}
	return found, rows.Err()
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a word and returns the stored row. A headword that already
// exists (case-insensitively) yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w *domain.WordRecord) (*domain.WordRecord, error) {
	query := psql.Insert(table).
		Columns("id", "headword", "headword_key", "meaning", "sentence", "source", "is_learned", "created_at", "updated_at").
		Values(w.ID, w.Headword, domain.DedupKey(w.Headword), w.Meaning, w.ExampleSentence, w.Source, w.IsLearned, w.CreatedAt, w.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "word", w.ID)
	}
	return created, nil
}

// Update overwrites the editable fields of a word.
func (r *Repo) Update(ctx context.Context, w *domain.WordRecord) (*domain.WordRecord, error) {
	query := psql.Update(table).
		Set("headword", w.Headword).
		Set("headword_key", domain.DedupKey(w.Headword)).
		Set("meaning", w.Meaning).
		Set("sentence", w.ExampleSentence).
		Set("source", w.Source).
		Set("updated_at", w.UpdatedAt).
		Where(sq.Eq{"id": w.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	updated, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "word", w.ID)
	}
	return updated, nil
}

// SetLearned marks a word as learned or not learned.
func (r *Repo) SetLearned(ctx context.Context, id uuid.UUID, learned bool) error {
	sql, args, err := psql.Update(table).
		Set("is_learned", learned).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set learned query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a word.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete word query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query sq.Sqlizer) (*domain.WordRecord, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return scanWord(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
}

func scanWord(row pgx.Row) (*domain.WordRecord, error) {
	var w domain.WordRecord
	err := row.Scan(
		&w.ID,
		&w.Headword,
		&w.Meaning,
		&w.ExampleSentence,
		&w.Source,
		&w.IsLearned,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
