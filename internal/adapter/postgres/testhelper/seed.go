package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// UniqueDeck returns a deck name that no other test uses.
func UniqueDeck() string {
	return "deck-" + uuid.New().String()[:8]
}

// SeedCard inserts a freshly registered card for word into deck, due at due.
// Returns the inserted domain.Card.
func SeedCard(t *testing.T, pool *pgxpool.Pool, deck, word string, due time.Time) domain.Card {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.NewCard(deck, word, now)
	card.Due = due.UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, deck, word, state, step, stability, difficulty, due, rating, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		card.ID, card.Deck, card.Word, string(card.State), card.Step, card.Stability, card.Difficulty,
		card.Due, string(card.Rating), card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}

	return card
}

// CountReviewLogs returns the number of review logs of a card.
func CountReviewLogs(t *testing.T, pool *pgxpool.Pool, cardID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM review_logs WHERE card_id = $1`, cardID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountReviewLogs: %v", err)
	}
	return n
}
