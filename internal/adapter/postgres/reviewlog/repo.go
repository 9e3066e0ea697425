// Package reviewlog implements the ReviewLog repository using PostgreSQL.
// The pre-review card snapshot is stored as JSONB for undo.
package reviewlog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/myenglish-srs/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

const table = "review_logs"

var columns = []string{"id", "card_id", "grade", "prev_state", "reviewed_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a review log and returns the stored row.
func (r *Repo) Create(ctx context.Context, rl *domain.ReviewLog) (*domain.ReviewLog, error) {
	prevState, err := marshalPrevState(rl.PrevState)
	if err != nil {
		return nil, fmt.Errorf("marshal prev_state: %w", err)
	}

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(rl.ID, rl.CardID, string(rl.Grade), prevState, rl.ReviewedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert review log query: %w", err)
	}

	created, err := scanReviewLog(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "review_log", rl.ID.String())
	}
	return created, nil
}

// GetByCardID returns up to limit review logs of a card, newest first.
func (r *Repo) GetByCardID(ctx context.Context, cardID uuid.UUID, limit int) ([]domain.ReviewLog, error) {
	sql, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"card_id": cardID}).
		OrderBy("reviewed_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build review history query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get review logs by card: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.ReviewLog, 0)
	for rows.Next() {
		rl, err := scanReviewLog(rows)
		if err != nil {
			return nil, fmt.Errorf("get review logs by card: %w", err)
		}
		logs = append(logs, *rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get review logs by card: %w", err)
	}
	return logs, nil
}

// GetLastByCardID returns the most recent review log of a card.
func (r *Repo) GetLastByCardID(ctx context.Context, cardID uuid.UUID) (*domain.ReviewLog, error) {
	sql, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"card_id": cardID}).
		OrderBy("reviewed_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build last review query: %w", err)
	}

	rl, err := scanReviewLog(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "review_log", "card "+cardID.String())
	}
	return rl, nil
}

// Delete removes a review log.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete review log query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "review_log", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review_log %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanReviewLog(row pgx.Row) (*domain.ReviewLog, error) {
	var (
		rl        domain.ReviewLog
		grade     string
		prevState []byte
	)
	if err := row.Scan(&rl.ID, &rl.CardID, &grade, &prevState, &rl.ReviewedAt); err != nil {
		return nil, err
	}

	rl.Grade = domain.ReviewGrade(grade)
	snapshot, err := unmarshalPrevState(prevState)
	if err != nil {
		return nil, err
	}
	rl.PrevState = snapshot
	return &rl, nil
}

// ---------------------------------------------------------------------------
// JSON helpers for prev_state (JSONB)
// ---------------------------------------------------------------------------

type cardSnapshotJSON struct {
	State               string  `json:"state"`
	Step                *int    `json:"step,omitempty"`
	Stability           float64 `json:"stability"`
	Difficulty          float64 `json:"difficulty"`
	Due                 string  `json:"due"`
	LastReview          *string `json:"last_review,omitempty"`
	ReviewedAt          *string `json:"review_datetime,omitempty"`
	DaysSinceLastReview *int    `json:"days_since_last_review,omitempty"`
	Rating              string  `json:"rating"`
}

// marshalPrevState converts a *domain.CardSnapshot to JSON bytes for JSONB storage.
// Returns nil for nil input (stored as NULL in DB).
func marshalPrevState(cs *domain.CardSnapshot) ([]byte, error) {
	if cs == nil {
		return nil, nil
	}

	j := cardSnapshotJSON{
		State:               string(cs.State),
		Step:                cs.Step,
		Stability:           cs.Stability,
		Difficulty:          cs.Difficulty,
		Due:                 formatTime(cs.Due),
		LastReview:          formatTimePtr(cs.LastReview),
		ReviewedAt:          formatTimePtr(cs.ReviewedAt),
		DaysSinceLastReview: cs.DaysSinceLastReview,
		Rating:              string(cs.Rating),
	}

	return json.Marshal(j)
}

// unmarshalPrevState converts JSON bytes from JSONB storage to a *domain.CardSnapshot.
// Returns nil for nil/empty input (NULL in DB).
func unmarshalPrevState(data []byte) (*domain.CardSnapshot, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var j cardSnapshotJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("unmarshal prev_state: %w", err)
	}

	due, err := time.Parse(time.RFC3339Nano, j.Due)
	if err != nil {
		return nil, fmt.Errorf("parse due: %w", err)
	}
	lastReview, err := parseTimePtr(j.LastReview)
	if err != nil {
		return nil, fmt.Errorf("parse last_review: %w", err)
	}
	reviewedAt, err := parseTimePtr(j.ReviewedAt)
	if err != nil {
		return nil, fmt.Errorf("parse review_datetime: %w", err)
	}

	return &domain.CardSnapshot{
		State:               domain.CardState(j.State),
		Step:                j.Step,
		Stability:           j.Stability,
		Difficulty:          j.Difficulty,
		Due:                 due,
		LastReview:          lastReview,
		ReviewedAt:          reviewedAt,
		DaysSinceLastReview: j.DaysSinceLastReview,
		Rating:              domain.ReviewGrade(j.Rating),
	}, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
