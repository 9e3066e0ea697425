// Package card implements the Card repository using PostgreSQL.
// Queries are built with squirrel using $n placeholders.
package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/myenglish-srs/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

const table = "cards"

var columns = []string{
	"id", "deck", "word", "state", "step", "stability", "difficulty", "due",
	"last_review", "review_datetime", "days_since_last_review", "rating",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByWord returns a card by its word within a deck.
func (r *Repo) GetByWord(ctx context.Context, deck, word string) (*domain.Card, error) {
	return r.getByWord(ctx, deck, word, false)
}

// GetByWordForUpdate is GetByWord with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetByWordForUpdate(ctx context.Context, deck, word string) (*domain.Card, error) {
	return r.getByWord(ctx, deck, word, true)
}

func (r *Repo) getByWord(ctx context.Context, deck, word string, forUpdate bool) (*domain.Card, error) {
	query := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"deck": deck, "word": word})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get card query: %w", err)
	}

	card, err := scanCard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", key(deck, word))
	}
	return card, nil
}

// ListAll returns every card of a deck ordered by due time, then word.
func (r *Repo) ListAll(ctx context.Context, deck string) ([]domain.Card, error) {
	query := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"deck": deck}).
		OrderBy("due ASC", "word ASC")

	return r.list(ctx, query, "list cards")
}

// Search returns the cards of a deck whose word contains query, ignoring
// case. Results are ordered by word.
func (r *Repo) Search(ctx context.Context, deck, query string) ([]domain.Card, error) {
	q := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"deck": deck}).
		Where(sq.ILike{"word": "%" + escapeLike(query) + "%"}).
		OrderBy("word ASC")

	return r.list(ctx, q, "search cards")
}

// ListDecks returns every deck with its total card count and the number of
// cards due strictly before now.
func (r *Repo) ListDecks(ctx context.Context, now time.Time) ([]domain.DeckSummary, error) {
	query := psql.Select("deck", "count(*)").
		Column(sq.Expr("count(*) FILTER (WHERE due < ?)", now)).
		From(table).
		GroupBy("deck").
		OrderBy("deck ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list decks query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	decks := make([]domain.DeckSummary, 0)
	for rows.Next() {
		var d domain.DeckSummary
		if err := rows.Scan(&d.Name, &d.Total, &d.Due); err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateBatch inserts cards, skipping words already present in their deck.
// It returns the number of cards actually inserted.
func (r *Repo) CreateBatch(ctx context.Context, cards []domain.Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	query := psql.Insert(table).Columns(columns...)
	for i := range cards {
		query = query.Values(values(&cards[i])...)
	}
	query = query.Suffix("ON CONFLICT (deck, word) DO NOTHING")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert cards query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "card", cards[0].Deck+"/*")
	}
	return int(tag.RowsAffected()), nil
}

// Save writes the scheduling state of an existing card and returns the
// stored row.
func (r *Repo) Save(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	query := psql.Update(table).
		SetMap(map[string]any{
			"state":                  string(card.State),
			"step":                   card.Step,
			"stability":              card.Stability,
			"difficulty":             card.Difficulty,
			"due":                    card.Due,
			"last_review":            card.LastReview,
			"review_datetime":        card.ReviewedAt,
			"days_since_last_review": card.DaysSinceLastReview,
			"rating":                 string(card.Rating),
			"updated_at":             card.UpdatedAt,
		}).
		Where(sq.Eq{"id": card.ID}).
		Suffix(returning)

	return r.updateReturning(ctx, query, key(card.Deck, card.Word))
}

// Reset puts a card back into its initial memory state, due at now.
func (r *Repo) Reset(ctx context.Context, deck, word string, now time.Time) (*domain.Card, error) {
	query := psql.Update(table).
		SetMap(map[string]any{
			"state":                  string(domain.CardStateLearning),
			"step":                   domain.InitialStep,
			"stability":              domain.InitialStability,
			"difficulty":             domain.InitialDifficulty,
			"due":                    now,
			"last_review":            nil,
			"review_datetime":        nil,
			"days_since_last_review": nil,
			"rating":                 string(domain.ReviewGradeHard),
			"updated_at":             now,
		}).
		Where(sq.Eq{"deck": deck, "word": word}).
		Suffix(returning)

	return r.updateReturning(ctx, query, key(deck, word))
}

// Rename changes the word of a card. Renaming onto a word already present in
// the deck fails with domain.ErrAlreadyExists.
func (r *Repo) Rename(ctx context.Context, deck, oldWord, newWord string, now time.Time) (*domain.Card, error) {
	query := psql.Update(table).
		Set("word", newWord).
		Set("updated_at", now).
		Where(sq.Eq{"deck": deck, "word": oldWord}).
		Suffix(returning)

	return r.updateReturning(ctx, query, key(deck, oldWord))
}

// Delete removes a card. Its review logs go with it (ON DELETE CASCADE).
func (r *Repo) Delete(ctx context.Context, deck, word string) error {
	sql, args, err := psql.Delete(table).
		Where(sq.Eq{"deck": deck, "word": word}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete card query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "card", key(deck, word))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", key(deck, word), domain.ErrNotFound)
	}
	return nil
}

// DeleteDeck removes every card of a deck and, through the cascade, their
// review logs. It returns the number of cards removed.
func (r *Repo) DeleteDeck(ctx context.Context, deck string) (int, error) {
	sql, args, err := psql.Delete(table).
		Where(sq.Eq{"deck": deck}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete deck query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "deck", deck)
	}
	if tag.RowsAffected() == 0 {
		return 0, fmt.Errorf("deck %s: %w", deck, domain.ErrNotFound)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder, op string) ([]domain.Card, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	cards := make([]domain.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cards, nil
}

func (r *Repo) updateReturning(ctx context.Context, query sq.UpdateBuilder, k string) (*domain.Card, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update card query: %w", err)
	}

	card, err := scanCard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", k)
	}
	return card, nil
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var (
		c      domain.Card
		state  string
		rating string
	)
	err := row.Scan(
		&c.ID, &c.Deck, &c.Word, &state, &c.Step, &c.Stability, &c.Difficulty, &c.Due,
		&c.LastReview, &c.ReviewedAt, &c.DaysSinceLastReview, &rating,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.State = domain.CardState(state)
	c.Rating = domain.ReviewGrade(rating)
	return &c, nil
}

func values(c *domain.Card) []any {
	return []any{
		c.ID, c.Deck, c.Word, string(c.State), c.Step, c.Stability, c.Difficulty, c.Due,
		c.LastReview, c.ReviewedAt, c.DaysSinceLastReview, string(c.Rating),
		c.CreatedAt, c.UpdatedAt,
	}
}

func key(deck, word string) string {
	return deck + "/" + word
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes query match literally inside a LIKE pattern.
func escapeLike(query string) string {
	return likeEscaper.Replace(query)
}
