package domain

import (
	"time"

	"github.com/google/uuid"
)

// Initial memory state of a freshly registered card.
const (
	InitialStability  = 1.18385
	InitialDifficulty = 6.488305
	InitialStep       = 1
)

// Card is a word (or phrase) scheduled with FSRS inside a deck.
// Word is the card's identity within the deck.
type Card struct {
	ID                  uuid.UUID
	Deck                string
	Word                string
	State               CardState
	Step                *int
	Stability           float64
	Difficulty          float64
	Due                 time.Time
	LastReview          *time.Time
	ReviewedAt          *time.Time
	DaysSinceLastReview *int
	Rating              ReviewGrade
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewCard returns a card for word carrying the initial memory state, due at now.
func NewCard(deck, word string, now time.Time) Card {
	step := InitialStep
	return Card{
		ID:         uuid.New(),
		Deck:       deck,
		Word:       word,
		State:      CardStateLearning,
		Step:       &step,
		Stability:  InitialStability,
		Difficulty: InitialDifficulty,
		Due:        now,
		Rating:     ReviewGradeHard,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Restore resets the memory state to the initial values, keeping identity.
func (c *Card) Restore(now time.Time) {
	step := InitialStep
	c.State = CardStateLearning
	c.Step = &step
	c.Stability = InitialStability
	c.Difficulty = InitialDifficulty
	c.Due = now
	c.LastReview = nil
	c.ReviewedAt = nil
	c.DaysSinceLastReview = nil
	c.Rating = ReviewGradeHard
}

// IsDue reports whether the card is eligible for review at now.
// A card due exactly at now is not yet due.
func (c *Card) IsDue(now time.Time) bool {
	return c.Due.Before(now)
}

// Snapshot captures the scheduling fields of the card.
func (c *Card) Snapshot() *CardSnapshot {
	return &CardSnapshot{
		State:               c.State,
		Step:                copyPtr(c.Step),
		Stability:           c.Stability,
		Difficulty:          c.Difficulty,
		Due:                 c.Due,
		LastReview:          copyPtr(c.LastReview),
		ReviewedAt:          copyPtr(c.ReviewedAt),
		DaysSinceLastReview: copyPtr(c.DaysSinceLastReview),
		Rating:              c.Rating,
	}
}

// Apply overwrites the scheduling fields of the card with the snapshot.
func (c *Card) Apply(s *CardSnapshot) {
	c.State = s.State
	c.Step = copyPtr(s.Step)
	c.Stability = s.Stability
	c.Difficulty = s.Difficulty
	c.Due = s.Due
	c.LastReview = copyPtr(s.LastReview)
	c.ReviewedAt = copyPtr(s.ReviewedAt)
	c.DaysSinceLastReview = copyPtr(s.DaysSinceLastReview)
	c.Rating = s.Rating
}

// CardSnapshot captures the FSRS state of a card before a review (for undo).
type CardSnapshot struct {
	State               CardState
	Step                *int
	Stability           float64
	Difficulty          float64
	Due                 time.Time
	LastReview          *time.Time
	ReviewedAt          *time.Time
	DaysSinceLastReview *int
	Rating              ReviewGrade
}

// ReviewLog records a single review event for a card.
type ReviewLog struct {
	ID         uuid.UUID
	CardID     uuid.UUID
	Grade      ReviewGrade
	PrevState  *CardSnapshot
	ReviewedAt time.Time
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
