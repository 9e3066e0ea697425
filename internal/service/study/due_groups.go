package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// GroupDue selects the cards that are due strictly before now, shuffles them
// with shuffle and splits them into consecutive groups of size. The last group
// may be smaller. Every due card lands in exactly one group.
func GroupDue(cards []domain.Card, now time.Time, size int, shuffle ShuffleFunc) ([][]domain.Card, error) {
	if size < 1 {
		return nil, domain.NewValidationError("group_size", "must be at least 1")
	}

	due := make([]domain.Card, 0, len(cards))
	for i := range cards {
		if cards[i].IsDue(now) {
			due = append(due, cards[i])
		}
	}

	shuffle(len(due), func(i, j int) {
		due[i], due[j] = due[j], due[i]
	})

	groups := make([][]domain.Card, 0, (len(due)+size-1)/size)
	for start := 0; start < len(due); start += size {
		end := min(start+size, len(due))
		groups = append(groups, due[start:end:end])
	}
	return groups, nil
}

// DueGroups loads the deck and groups its due cards for a study round.
func (s *Service) DueGroups(ctx context.Context, input DueGroupsInput) ([][]domain.Card, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.cards.ListAll(ctx, input.Deck)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	groups, err := GroupDue(cards, s.clock.Now(), input.GroupSize, s.shuffle)
	if err != nil {
		return nil, err
	}

	due := 0
	for _, g := range groups {
		due += len(g)
	}

	s.logger(ctx).InfoContext(ctx, "due groups built",
		slog.String("deck", input.Deck),
		slog.Int("total", len(cards)),
		slog.Int("due", due),
		slog.Int("groups", len(groups)),
	)

	return groups, nil
}
