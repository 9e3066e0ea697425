package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study/fsrs"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByWord(ctx context.Context, deck, word string) (*domain.Card, error)
	GetByWordForUpdate(ctx context.Context, deck, word string) (*domain.Card, error)
	Save(ctx context.Context, card *domain.Card) (*domain.Card, error)
	ListAll(ctx context.Context, deck string) ([]domain.Card, error)
	Reset(ctx context.Context, deck, word string, now time.Time) (*domain.Card, error)
	Delete(ctx context.Context, deck, word string) error
	DeleteDeck(ctx context.Context, deck string) (int, error)
	CreateBatch(ctx context.Context, cards []domain.Card) (int, error)
	Search(ctx context.Context, deck, query string) ([]domain.Card, error)
	Rename(ctx context.Context, deck, oldWord, newWord string, now time.Time) (*domain.Card, error)
	ListDecks(ctx context.Context, now time.Time) ([]domain.DeckSummary, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	GetByCardID(ctx context.Context, cardID uuid.UUID, limit int) ([]domain.ReviewLog, error)
	GetLastByCardID(ctx context.Context, cardID uuid.UUID) (*domain.ReviewLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ShuffleFunc permutes n elements through swap. rand.Shuffle from
// math/rand/v2 (or a seeded *rand.Rand's Shuffle) satisfies it.
type ShuffleFunc func(n int, swap func(i, j int))

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the study business logic.
type Service struct {
	cards      cardRepo
	reviews    reviewLogRepo
	tx         txManager
	clock      clockwork.Clock
	shuffle    ShuffleFunc
	log        *slog.Logger
	scheduler  *fsrs.Scheduler
	undoWindow time.Duration
}

// NewService creates a new Study service. The scheduler is built from
// srsConfig and fails fast on an invalid configuration.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	reviews reviewLogRepo,
	tx txManager,
	clock clockwork.Clock,
	shuffle ShuffleFunc,
	srsConfig domain.SRSConfig,
) (*Service, error) {
	scheduler, err := fsrs.NewScheduler(parametersFromConfig(srsConfig))
	if err != nil {
		return nil, fmt.Errorf("build scheduler: %w", err)
	}

	return &Service{
		cards:      cards,
		reviews:    reviews,
		tx:         tx,
		clock:      clock,
		shuffle:    shuffle,
		log:        log.With("service", "study"),
		scheduler:  scheduler,
		undoWindow: srsConfig.UndoWindow,
	}, nil
}

// logger returns the service logger annotated with the study session, if any.
func (s *Service) logger(ctx context.Context) *slog.Logger {
	if id, ok := ctxutil.SessionIDFromCtx(ctx); ok {
		return s.log.With(slog.String("session_id", id.String()))
	}
	return s.log
}
