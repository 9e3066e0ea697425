package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jonboulle/clockwork"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres/card"
	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/myenglish-srs/internal/config"
	"github.com/heartmarshall/myenglish-srs/internal/service/study"
	"github.com/heartmarshall/myenglish-srs/migrations"
)

// App holds the wired dependencies of the deck tool.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Study  *study.Service

	pool *pgxpool.Pool
}

// New connects to the database and wires repositories into the study service.
// The caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// Repositories
	cardRepo := card.New(pool)
	reviewRepo := reviewlog.New(pool)
	txManager := postgres.NewTxManager(pool)

	studyService, err := study.NewService(
		logger,
		cardRepo,
		reviewRepo,
		txManager,
		clockwork.NewRealClock(),
		rand.Shuffle,
		cfg.SRS.ToDomain(),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create study service: %w", err)
	}

	logger.Debug("application wired",
		slog.String("version", BuildVersion()),
		slog.Float64("desired_retention", cfg.SRS.DesiredRetention),
		slog.Int("max_interval_days", cfg.SRS.MaxIntervalDays),
	)

	return &App{
		Config: cfg,
		Logger: logger,
		Study:  studyService,
		pool:   pool,
	}, nil
}

// Migrate applies all pending goose migrations and returns the number applied.
func (a *App) Migrate(ctx context.Context) (int, error) {
	// db borrows connections from the pool; App.Close releases them.
	db := stdlib.OpenDBFromPool(a.pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return 0, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		a.Logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return len(results), nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.pool.Close()
}
