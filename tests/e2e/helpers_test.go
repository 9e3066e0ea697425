//go:build e2e

package e2e_test

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres/card"
	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study"
)

// testEnv is a study service wired to a real database and a fake clock.
type testEnv struct {
	Pool  *pgxpool.Pool
	Clock *clockwork.FakeClock
	Study *study.Service
	Deck  string
}

func setupStudy(t *testing.T) *testEnv {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	svc, err := study.NewService(
		logger,
		card.New(pool),
		reviewlog.New(pool),
		postgres.NewTxManager(pool),
		clock,
		rand.Shuffle,
		domain.SRSConfig{
			DesiredRetention: 0.9,
			MaxIntervalDays:  36500,
			LearningSteps:    []time.Duration{time.Minute, 10 * time.Minute},
			RelearningSteps:  []time.Duration{10 * time.Minute},
			UndoWindow:       10 * time.Minute,
		},
	)
	require.NoError(t, err)

	return &testEnv{Pool: pool, Clock: clock, Study: svc, Deck: testhelper.UniqueDeck()}
}
