package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

const defaultHistoryLimit = 20

// RegisterWords adds new cards to a deck. Words already present in the deck
// (case-sensitive) are skipped, as are repeats within the input.
func (s *Service) RegisterWords(ctx context.Context, input RegisterWordsInput) (*RegisterResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	seen := make(map[string]struct{}, len(input.Words))
	cards := make([]domain.Card, 0, len(input.Words))
	for _, w := range input.Words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		cards = append(cards, domain.NewCard(input.Deck, w, now))
	}

	created, err := s.cards.CreateBatch(ctx, cards)
	if err != nil {
		return nil, fmt.Errorf("create cards: %w", err)
	}

	result := &RegisterResult{
		Created:         created,
		SkippedExisting: len(input.Words) - created,
	}

	s.logger(ctx).InfoContext(ctx, "words registered",
		slog.String("deck", input.Deck),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.SkippedExisting),
	)

	return result, nil
}

// GetCard returns a single card.
func (s *Service) GetCard(ctx context.Context, input CardInput) (*domain.Card, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.GetByWord(ctx, input.Deck, input.Word)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return card, nil
}

// ListCards returns every card of a deck.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]domain.Card, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.cards.ListAll(ctx, input.Deck)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// SearchCards returns the cards whose word contains the query, ignoring case.
func (s *Service) SearchCards(ctx context.Context, input SearchCardsInput) ([]domain.Card, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.cards.Search(ctx, input.Deck, input.Query)
	if err != nil {
		return nil, fmt.Errorf("search cards: %w", err)
	}
	return cards, nil
}

// RenameCard changes the word of a card, keeping its scheduling state.
func (s *Service) RenameCard(ctx context.Context, input RenameCardInput) (*domain.Card, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.Rename(ctx, input.Deck, input.Word, input.NewWord, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("rename card: %w", err)
	}

	s.logger(ctx).InfoContext(ctx, "card renamed",
		slog.String("deck", input.Deck),
		slog.String("old_word", input.Word),
		slog.String("new_word", card.Word),
	)

	return card, nil
}

// RestoreCard resets a card to the initial memory state, due now.
func (s *Service) RestoreCard(ctx context.Context, input CardInput) (*domain.Card, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.Reset(ctx, input.Deck, input.Word, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("reset card: %w", err)
	}

	s.logger(ctx).InfoContext(ctx, "card restored",
		slog.String("deck", input.Deck),
		slog.String("word", input.Word),
	)

	return card, nil
}

// DeleteCard removes a card together with its review history.
func (s *Service) DeleteCard(ctx context.Context, input CardInput) error {
	input.normalize()
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, input.Deck, input.Word); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.logger(ctx).InfoContext(ctx, "card deleted",
		slog.String("deck", input.Deck),
		slog.String("word", input.Word),
	)

	return nil
}

// DeleteDeck removes every card of a deck together with their review
// histories and returns how many cards were removed.
func (s *Service) DeleteDeck(ctx context.Context, input DeckInput) (int, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return 0, err
	}

	removed, err := s.cards.DeleteDeck(ctx, input.Deck)
	if err != nil {
		return 0, fmt.Errorf("delete deck: %w", err)
	}

	s.logger(ctx).InfoContext(ctx, "deck deleted",
		slog.String("deck", input.Deck),
		slog.Int("cards", removed),
	)

	return removed, nil
}

// ListDecks returns every deck with its total and currently due card counts.
func (s *Service) ListDecks(ctx context.Context) ([]domain.DeckSummary, error) {
	decks, err := s.cards.ListDecks(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// CardHistory returns the most recent reviews of a card, newest first.
func (s *Service) CardHistory(ctx context.Context, input CardHistoryInput) ([]domain.ReviewLog, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	card, err := s.cards.GetByWord(ctx, input.Deck, input.Word)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	logs, err := s.reviews.GetByCardID(ctx, card.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("get review history: %w", err)
	}
	return logs, nil
}
