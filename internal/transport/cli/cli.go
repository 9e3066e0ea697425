// Package cli is the command-line front end of the deck tool: it parses
// commands, calls the study service and prints the results.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/myenglish-srs/internal/app"
	"github.com/heartmarshall/myenglish-srs/internal/config"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

type studyService interface {
	RegisterWords(ctx context.Context, input study.RegisterWordsInput) (*study.RegisterResult, error)
	DueGroups(ctx context.Context, input study.DueGroupsInput) ([][]domain.Card, error)
	ReviewCard(ctx context.Context, input study.ReviewCardInput) (*domain.Card, error)
	ReviewGroup(ctx context.Context, input study.ReviewGroupInput) (*study.GroupResult, error)
	UndoReview(ctx context.Context, input study.UndoReviewInput) (*domain.Card, error)
	GetCard(ctx context.Context, input study.CardInput) (*domain.Card, error)
	ListCards(ctx context.Context, input study.ListCardsInput) ([]domain.Card, error)
	SearchCards(ctx context.Context, input study.SearchCardsInput) ([]domain.Card, error)
	RenameCard(ctx context.Context, input study.RenameCardInput) (*domain.Card, error)
	RestoreCard(ctx context.Context, input study.CardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, input study.CardInput) error
	DeleteDeck(ctx context.Context, input study.DeckInput) (int, error)
	ListDecks(ctx context.Context) ([]domain.DeckSummary, error)
	CardHistory(ctx context.Context, input study.CardHistoryInput) ([]domain.ReviewLog, error)
}

// backend is what the commands need from the wired application.
type backend struct {
	study       studyService
	migrate     func(ctx context.Context) (int, error)
	defaultDeck string
	groupSize   int
	close       func()
}

type openFunc func(ctx context.Context, configPath string) (*backend, error)

type runner struct {
	open       openFunc
	out        io.Writer
	now        func() time.Time
	deck       string
	configPath string
}

// Run parses args and executes the selected command against the configured database.
func Run(ctx context.Context, args []string) error {
	return newRootCommand(openApp, os.Stdout, time.Now).Run(ctx, args)
}

func openApp(ctx context.Context, configPath string) (*backend, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, err
	}

	logger := app.NewLogger(os.Stderr, cfg.Log)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &backend{
		study:       a.Study,
		migrate:     a.Migrate,
		defaultDeck: cfg.Study.DefaultDeck,
		groupSize:   cfg.Study.GroupSize,
		close:       a.Close,
	}, nil
}

func newRootCommand(open openFunc, out io.Writer, now func() time.Time) *cli.Command {
	r := &runner{open: open, out: out, now: now}

	return &cli.Command{
		Name:    "deck",
		Usage:   "spaced-repetition vocabulary decks scheduled with FSRS",
		Version: app.BuildVersion(),
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "deck",
				Aliases:     []string{"d"},
				Usage:       "Deck to work on (default: study.default_deck from config)",
				Sources:     cli.EnvVars("DECK_NAME"),
				Destination: &r.deck,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the YAML config file (default: ./config.yaml)",
				Sources:     cli.EnvVars("CONFIG_PATH"),
				Destination: &r.configPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctxutil.WithSessionID(ctx, uuid.New()), nil
		},
		Commands: []*cli.Command{
			r.cmdAdd(),
			r.cmdDue(),
			r.cmdReview(),
			r.cmdReviewGroup(),
			r.cmdUndo(),
			r.cmdRestore(),
			r.cmdDelete(),
			r.cmdRename(),
			r.cmdSearch(),
			r.cmdShow(),
			r.cmdList(),
			r.cmdDecks(),
			r.cmdDeleteDeck(),
			r.cmdMigrate(),
		},
	}
}

// withBackend opens the backend for the duration of fn.
func (r *runner) withBackend(ctx context.Context, fn func(b *backend) error) error {
	b, err := r.open(ctx, r.configPath)
	if err != nil {
		return err
	}
	defer b.close()

	return describe(fn(b))
}

// deckName returns the --deck value or the configured default.
func (r *runner) deckName(b *backend) string {
	if r.deck != "" {
		return r.deck
	}
	return b.defaultDeck
}

func requireArgs(c *cli.Command, n int, usage string) ([]string, error) {
	args := c.Args().Slice()
	if len(args) < n {
		return nil, fmt.Errorf("usage: deck %s %s", c.Name, usage)
	}
	return args, nil
}
