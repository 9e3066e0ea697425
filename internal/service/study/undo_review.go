package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// UndoReview reverts the last review of a card within the undo window.
func (s *Service) UndoReview(ctx context.Context, input UndoReviewInput) (*domain.Card, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var (
		restored    *domain.Card
		undoneGrade domain.ReviewGrade
	)

	// Transaction: lock card, validate, restore, delete log
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByWordForUpdate(txCtx, input.Deck, input.Word)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		lastLog, err := s.reviews.GetLastByCardID(txCtx, card.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("word", "card has no reviews to undo")
			}
			return fmt.Errorf("get last review: %w", err)
		}

		if lastLog.PrevState == nil {
			return domain.NewValidationError("review", "review cannot be undone")
		}
		if now.Sub(lastLog.ReviewedAt) > s.undoWindow {
			return domain.NewValidationError("review", "undo window expired")
		}
		if card.UpdatedAt.After(lastLog.ReviewedAt) {
			return fmt.Errorf("card %s/%s changed since the review: %w", input.Deck, input.Word, domain.ErrConflict)
		}

		undoneGrade = lastLog.Grade
		card.Apply(lastLog.PrevState)
		card.UpdatedAt = now

		restored, err = s.cards.Save(txCtx, card)
		if err != nil {
			return fmt.Errorf("restore card: %w", err)
		}

		if err := s.reviews.Delete(txCtx, lastLog.ID); err != nil {
			return fmt.Errorf("delete review log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger(ctx).InfoContext(ctx, "review undone",
		slog.String("deck", input.Deck),
		slog.String("word", input.Word),
		slog.String("undone_grade", string(undoneGrade)),
		slog.String("restored_state", string(restored.State)),
	)

	return restored, nil
}
