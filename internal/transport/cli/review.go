package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study"
)

func parseGrade(s string) (domain.ReviewGrade, error) {
	grade, ok := domain.ParseReviewGrade(s)
	if !ok {
		return "", fmt.Errorf("unknown grade %q: use again, hard, good, easy or 1-4", s)
	}
	return grade, nil
}

func (r *runner) cmdDue() *cli.Command {
	var size int

	return &cli.Command{
		Name:  "due",
		Usage: "Show due cards shuffled into study groups",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "size",
				Aliases:     []string{"n"},
				Usage:       "Cards per group (default: study.group_size from config)",
				Destination: &size,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.withBackend(ctx, func(b *backend) error {
				if size == 0 {
					size = b.groupSize
				}
				groups, err := b.study.DueGroups(ctx, study.DueGroupsInput{Deck: r.deckName(b), GroupSize: size})
				if err != nil {
					return err
				}
				if len(groups) == 0 {
					muted.Fprintln(r.out, "nothing due")
					return nil
				}

				now := r.now()
				for i, group := range groups {
					header.Fprintf(r.out, "group %d/%d\n", i+1, len(groups))
					for _, card := range group {
						fmt.Fprintf(r.out, "  %s", card.Word)
						muted.Fprintf(r.out, "  due %s\n", relDue(card.Due, now))
					}
				}
				return nil
			})
		},
	}
}

func (r *runner) cmdReview() *cli.Command {
	return &cli.Command{
		Name:      "review",
		Usage:     "Grade your recall of a card and reschedule it",
		ArgsUsage: "WORD GRADE",
		Action: func(ctx context.Context, c *cli.Command) error {
			args, err := requireArgs(c, 2, "WORD GRADE")
			if err != nil {
				return err
			}
			grade, err := parseGrade(args[1])
			if err != nil {
				return err
			}

			return r.withBackend(ctx, func(b *backend) error {
				card, err := b.study.ReviewCard(ctx, study.ReviewCardInput{
					Deck:  r.deckName(b),
					Word:  args[0],
					Grade: grade,
				})
				if err != nil {
					return err
				}
				printReviewed(r.out, card, r.now())
				return nil
			})
		},
	}
}

func (r *runner) cmdReviewGroup() *cli.Command {
	return &cli.Command{
		Name:      "review-group",
		Usage:     "Apply one grade to every word of a study group",
		ArgsUsage: "GRADE WORD...",
		Action: func(ctx context.Context, c *cli.Command) error {
			args, err := requireArgs(c, 2, "GRADE WORD...")
			if err != nil {
				return err
			}
			grade, err := parseGrade(args[0])
			if err != nil {
				return err
			}

			return r.withBackend(ctx, func(b *backend) error {
				res, err := b.study.ReviewGroup(ctx, study.ReviewGroupInput{
					Deck:  r.deckName(b),
					Words: args[1:],
					Grade: grade,
				})
				if err != nil {
					return err
				}
				now := r.now()
				for _, card := range res.Cards {
					printReviewed(r.out, card, now)
				}
				printCounts(r.out, res.Counts)
				return nil
			})
		},
	}
}

func (r *runner) cmdUndo() *cli.Command {
	return &cli.Command{
		Name:      "undo",
		Usage:     "Revert the last review of a card",
		ArgsUsage: "WORD",
		Action: func(ctx context.Context, c *cli.Command) error {
			args, err := requireArgs(c, 1, "WORD")
			if err != nil {
				return err
			}
			return r.withBackend(ctx, func(b *backend) error {
				card, err := b.study.UndoReview(ctx, study.UndoReviewInput{Deck: r.deckName(b), Word: args[0]})
				if err != nil {
					return err
				}
				fmt.Fprintf(r.out, "%s back to %s, due %s\n", card.Word, stateLabel(card), relDue(card.Due, r.now()))
				return nil
			})
		},
	}
}
