package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/mod/semver"

	"github.com/abhisek/stave/internal/quiz"
)

// QuestionRecord is a banked question with its replay metadata.
type QuestionRecord struct {
	ID            string
	Kind          quiz.Kind
	Section       quiz.Section
	Title         string
	Seed          uint64
	EngineVersion string
	CreatedAt     time.Time
	Question      *quiz.Question
}

// Replayable reports whether the current engine regenerates this record's
// question from its seed.
func (r QuestionRecord) Replayable() bool {
	return Compatible(r.EngineVersion)
}

// Compatible reports whether questions banked under version regenerate
// identically under quiz.EngineVersion. Patch releases never change
// generation; minor and major releases may.
func Compatible(version string) bool {
	if !semver.IsValid(version) {
		return false
	}
	return semver.MajorMinor(version) == semver.MajorMinor(quiz.EngineVersion)
}

// QuestionFilter narrows a bank listing. Zero values match everything.
type QuestionFilter struct {
	Kind    quiz.Kind
	Section quiz.Section
	Limit   int
	Offset  int
}

// KindCount is the number of banked questions of one kind.
type KindCount struct {
	Kind  quiz.Kind
	Count int
}

// QuestionRepo is the question bank.
type QuestionRepo interface {
	// Save banks q. Saving the same kind and seed twice is a no-op.
	Save(ctx context.Context, q *quiz.Question) error

	// Get returns the record with id, or ErrNotFound.
	Get(ctx context.Context, id string) (*QuestionRecord, error)

	// List returns records newest first.
	List(ctx context.Context, f QuestionFilter) ([]QuestionRecord, error)

	// Counts returns the number of banked questions per kind.
	Counts(ctx context.Context) ([]KindCount, error)

	// Delete removes a record. Deleting a missing id returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

type questionRepo struct {
	db *sql.DB
}

var questionSelect = []string{"id", "kind", "section", "title", "seed", "engine_version", "payload", "created_at"}

func (r *questionRepo) Save(ctx context.Context, q *quiz.Question) error {
	payload, err := msgpack.Marshal(q)
	if err != nil {
		return fmt.Errorf("encode question: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(questionsTable.Name).
		Columns(questionSelect...).
		Values(q.ID, string(q.Kind), string(q.Section), q.Title, int64(q.Seed),
			quiz.EngineVersion, payload, q.CreatedAt.UnixMilli()).
		OnConflict(entsql.ConflictColumns("id"), entsql.DoNothing()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save question %s: %w", q.ID, err)
	}
	return nil
}

func (r *questionRepo) Get(ctx context.Context, id string) (*QuestionRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(questionSelect...).
		From(b.Table(questionsTable.Name)).
		Where(entsql.EQ("id", id)).
		Query()

	rec, err := scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("question %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *questionRepo) List(ctx context.Context, f QuestionFilter) ([]QuestionRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(questionSelect...).
		From(b.Table(questionsTable.Name)).
		OrderBy(entsql.Desc("created_at"), "id")
	if f.Kind != "" {
		sel.Where(entsql.EQ("kind", string(f.Kind)))
	}
	if f.Section != "" {
		sel.Where(entsql.EQ("section", string(f.Section)))
	}
	if f.Limit > 0 {
		sel.Limit(f.Limit)
	}
	if f.Offset > 0 {
		sel.Offset(f.Offset)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var out []QuestionRecord
	for rows.Next() {
		rec, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *questionRepo) Counts(ctx context.Context) ([]KindCount, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("kind", entsql.Count("*")).
		From(b.Table(questionsTable.Name)).
		GroupBy("kind").
		OrderBy("kind").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	defer rows.Close()

	var out []KindCount
	for rows.Next() {
		var kc KindCount
		var kind string
		if err := rows.Scan(&kind, &kc.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		kc.Kind = quiz.Kind(kind)
		out = append(out, kc)
	}
	return out, rows.Err()
}

func (r *questionRepo) Delete(ctx context.Context, id string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(questionsTable.Name).
		Where(entsql.EQ("id", id)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete question %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("question %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*QuestionRecord, error) {
	var rec QuestionRecord
	var kind, section string
	var seed, createdAtMs int64
	var payload []byte
	if err := row.Scan(&rec.ID, &kind, &section, &rec.Title, &seed, &rec.EngineVersion, &payload, &createdAtMs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan question: %w", err)
	}

	var q quiz.Question
	if err := msgpack.Unmarshal(payload, &q); err != nil {
		return nil, fmt.Errorf("decode question %s: %w", rec.ID, err)
	}

	rec.Kind = quiz.Kind(kind)
	rec.Section = quiz.Section(section)
	rec.Seed = uint64(seed)
	rec.CreatedAt = time.UnixMilli(createdAtMs)
	rec.Question = &q
	return &rec, nil
}
