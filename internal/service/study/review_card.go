package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// ReviewCard records a review and updates the card's FSRS state.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (*domain.Card, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var (
		updated  *domain.Card
		oldState domain.CardState
	)

	// Transaction: lock card + save new state + review log
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByWordForUpdate(txCtx, input.Deck, input.Word)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		oldState = card.State

		updated, err = s.review(txCtx, card, input.Grade, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger(ctx).InfoContext(ctx, "card reviewed",
		slog.String("deck", input.Deck),
		slog.String("word", input.Word),
		slog.String("grade", string(input.Grade)),
		slog.String("old_state", string(oldState)),
		slog.String("new_state", string(updated.State)),
		slog.Float64("stability", updated.Stability),
		slog.Time("due", updated.Due),
	)

	return updated, nil
}

// ReviewGroup applies one grade to every card of a review group inside a
// single transaction. Either all cards are rescheduled or none is.
func (s *Service) ReviewGroup(ctx context.Context, input ReviewGroupInput) (*GroupResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	result := &GroupResult{Cards: make([]*domain.Card, 0, len(input.Words))}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, word := range input.Words {
			card, err := s.cards.GetByWordForUpdate(txCtx, input.Deck, word)
			if err != nil {
				return fmt.Errorf("get card %q: %w", word, err)
			}

			updated, err := s.review(txCtx, card, input.Grade, now)
			if err != nil {
				return err
			}
			result.Cards = append(result.Cards, updated)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Counts.Add(input.Grade, len(result.Cards))

	s.logger(ctx).InfoContext(ctx, "group reviewed",
		slog.String("deck", input.Deck),
		slog.String("grade", string(input.Grade)),
		slog.Int("cards", len(result.Cards)),
	)

	return result, nil
}

// review schedules card and persists the new state together with a review
// log holding the pre-review snapshot. Must run inside a transaction.
func (s *Service) review(ctx context.Context, card *domain.Card, grade domain.ReviewGrade, now time.Time) (*domain.Card, error) {
	snapshot := card.Snapshot()

	scheduled, err := s.scheduler.Schedule(cardToFSRS(card), gradeToRating(grade), now)
	if err != nil {
		return nil, fmt.Errorf("schedule card %q: %w", card.Word, err)
	}

	next := *card
	applyFSRS(&next, scheduled)
	next.UpdatedAt = now

	saved, err := s.cards.Save(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("save card: %w", err)
	}

	_, err = s.reviews.Create(ctx, &domain.ReviewLog{
		ID:         uuid.New(),
		CardID:     card.ID,
		Grade:      grade,
		PrevState:  snapshot,
		ReviewedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create review log: %w", err)
	}

	return saved, nil
}
