package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/myenglish-srs/internal/service/study"
)

func (r *runner) cmdAdd() *cli.Command {
	var file string

	return &cli.Command{
		Name:      "add",
		Usage:     "Register words as new cards (existing words are skipped)",
		ArgsUsage: "WORD...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "Read words from a file, one per line (- for stdin); lines starting with # are ignored",
				Destination: &file,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			words := c.Args().Slice()
			if file != "" {
				fromFile, err := readWordFile(file)
				if err != nil {
					return err
				}
				words = append(words, fromFile...)
			}
			if len(words) == 0 {
				return fmt.Errorf("usage: deck add WORD... or deck add --file PATH")
			}

			return r.withBackend(ctx, func(b *backend) error {
				deck := r.deckName(b)
				res, err := b.study.RegisterWords(ctx, study.RegisterWordsInput{Deck: deck, Words: words})
				if err != nil {
					return err
				}
				fmt.Fprintf(r.out, "%s: added %d, skipped %d already present\n", deck, res.Created, res.SkippedExisting)
				return nil
			})
		},
	}
}

func readWordFile(path string) ([]string, error) {
	var src io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open word file: %w", err)
		}
		defer f.Close()
		src = f
	}
	return scanWords(src)
}

func scanWords(src io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word file: %w", err)
	}
	return words, nil
}

func (r *runner) cmdRestore() *cli.Command {
	return &cli.Command{
		Name:      "restore",
		Usage:     "Reset a card to the initial learning state",
		ArgsUsage: "WORD",
		Action: func(ctx context.Context, c *cli.Command) error {
			args, err := requireArgs(c, 1, "WORD")
			if err != nil {
				return err
			}
			return r.withBackend(ctx, func(b *backend) error {
				restored, err := b.study.RestoreCard(ctx, study.CardInput{Deck: r.deckName(b), Word: args[0]})
				if err != nil {
					return err
				}
				fmt.Fprintf(r.out, "%s restored, due %s\n", restored.Word, relDue(restored.Due, r.now()))
				return nil
			})
		},
	}
}

func (r *runner) cmdDelete() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a card and its review history",
		ArgsUsage: "WORD",
		Action: func(ctx context.Context, c *cli.Command) error {
			args, err := requireArgs(c, 1, "WORD")
			if err != nil {
				return err
			}
			return r.withBackend(ctx, func(b *backend) error {
				if err := b.study.DeleteCard(ctx, study.CardInput{Deck: r.deckName(b), Word: args[0]}); err != nil {
					return err
				}
				fmt.Fprintf(r.out, "%s deleted\n", args[0])
				return nil
			})
		},
	}
}

func (r *runner) cmdDeleteDeck() *cli.Command {
	var yes bool

	return &cli.Command{
		Name:      "delete-deck",
		Usage:     "Delete a whole deck with every card and review history in it",
		ArgsUsage: "DECK",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "Confirm the deletion",
				Destination: &yes,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			args, err := requireArgs(c, 1, "DECK")
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete deck %q without --yes", args[0])
			}
			return r.withBackend(ctx, func(b *backend) error {
				removed, err := b.study.DeleteDeck(ctx, study.DeckInput{Deck: args[0]})
				if err != nil {
					return err
				}
				fmt.Fprintf(r.out, "deck %s deleted (%s)\n", args[0], english.Plural(removed, "card", ""))
				return nil
			})
		},
	}
}

func (r *runner) cmdRename() *cli.Command {
	return &cli.Command{
		Name:      "rename",
		Usage:     "Change the word of a card, keeping its schedule",
		ArgsUsage: "WORD NEW_WORD",
		Action: func(ctx context.Context, c *cli.Command) error {
			args, err := requireArgs(c, 2, "WORD NEW_WORD")
			if err != nil {
				return err
			}
			return r.withBackend(ctx, func(b *backend) error {
				renamed, err := b.study.RenameCard(ctx, study.RenameCardInput{
					Deck:    r.deckName(b),
					Word:    args[0],
					NewWord: args[1],
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(r.out, "%s renamed to %s\n", args[0], renamed.Word)
				return nil
			})
		},
	}
}

func (r *runner) cmdSearch() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find cards whose word contains the query",
		ArgsUsage: "QUERY",
		Action: func(ctx context.Context, c *cli.Command) error {
			args, err := requireArgs(c, 1, "QUERY")
			if err != nil {
				return err
			}
			return r.withBackend(ctx, func(b *backend) error {
				cards, err := b.study.SearchCards(ctx, study.SearchCardsInput{
					Deck:  r.deckName(b),
					Query: strings.Join(args, " "),
				})
				if err != nil {
					return err
				}
				printCards(r.out, cards, r.now())
				return nil
			})
		},
	}
}

func (r *runner) cmdShow() *cli.Command {
	var limit int

	return &cli.Command{
		Name:      "show",
		Usage:     "Show a card with its review history",
		ArgsUsage: "WORD",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "history",
				Usage:       "Number of past reviews to show",
				Value:       10,
				Destination: &limit,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			args, err := requireArgs(c, 1, "WORD")
			if err != nil {
				return err
			}
			return r.withBackend(ctx, func(b *backend) error {
				deck := r.deckName(b)
				card, err := b.study.GetCard(ctx, study.CardInput{Deck: deck, Word: args[0]})
				if err != nil {
					return err
				}
				logs, err := b.study.CardHistory(ctx, study.CardHistoryInput{Deck: deck, Word: args[0], Limit: limit})
				if err != nil {
					return err
				}
				now := r.now()
				printCard(r.out, card, now)
				printHistory(r.out, logs, now)
				return nil
			})
		},
	}
}

func (r *runner) cmdList() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List every card of the deck, soonest due first",
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.withBackend(ctx, func(b *backend) error {
				cards, err := b.study.ListCards(ctx, study.ListCardsInput{Deck: r.deckName(b)})
				if err != nil {
					return err
				}
				printCards(r.out, cards, r.now())
				return nil
			})
		},
	}
}

func (r *runner) cmdDecks() *cli.Command {
	return &cli.Command{
		Name:  "decks",
		Usage: "List decks with card and due counts",
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.withBackend(ctx, func(b *backend) error {
				decks, err := b.study.ListDecks(ctx)
				if err != nil {
					return err
				}
				printDecks(r.out, decks)
				return nil
			})
		},
	}
}

func (r *runner) cmdMigrate() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations",
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.withBackend(ctx, func(b *backend) error {
				n, err := b.migrate(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(r.out, "%d migrations applied\n", n)
				return nil
			})
		},
	}
}
