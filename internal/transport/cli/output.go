package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

var (
	header = color.New(color.FgBlue, color.Bold)
	muted  = color.New(color.FgHiBlack)
)

func gradeColor(g domain.ReviewGrade) *color.Color {
	switch g {
	case domain.ReviewGradeAgain:
		return color.New(color.FgRed)
	case domain.ReviewGradeHard:
		return color.New(color.FgYellow)
	case domain.ReviewGradeGood:
		return color.New(color.FgGreen)
	case domain.ReviewGradeEasy:
		return color.New(color.FgCyan)
	}
	return color.New(color.Reset)
}

// relDue renders due relative to now, e.g. "10 minutes from now" or "3 days ago".
func relDue(due, now time.Time) string {
	return humanize.RelTime(due, now, "ago", "from now")
}

func stateLabel(c *domain.Card) string {
	if c.Step != nil {
		return fmt.Sprintf("%s (step %d)", c.State, *c.Step)
	}
	return string(c.State)
}

// printCards writes one aligned row per card.
func printCards(w io.Writer, cards []domain.Card, now time.Time) {
	if len(cards) == 0 {
		muted.Fprintln(w, "no cards")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WORD\tSTATE\tSTABILITY\tDIFFICULTY\tDUE")
	for i := range cards {
		c := &cards[i]
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%s\n",
			c.Word, stateLabel(c), c.Stability, c.Difficulty, relDue(c.Due, now))
	}
	tw.Flush()
}

// printReviewed writes the outcome of a single review.
func printReviewed(w io.Writer, c *domain.Card, now time.Time) {
	gradeColor(c.Rating).Fprintf(w, "%-6s", c.Rating)
	fmt.Fprintf(w, " %s -> %s, next review %s (%s)\n",
		c.Word, stateLabel(c), relDue(c.Due, now), c.Due.Local().Format(time.DateTime))
}

// printCard writes the full memory state of a card.
func printCard(w io.Writer, c *domain.Card, now time.Time) {
	header.Fprintf(w, "%s", c.Word)
	muted.Fprintf(w, "  [%s]\n", c.Deck)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  state\t%s\n", stateLabel(c))
	fmt.Fprintf(tw, "  stability\t%.4f\n", c.Stability)
	fmt.Fprintf(tw, "  difficulty\t%.4f\n", c.Difficulty)
	fmt.Fprintf(tw, "  due\t%s (%s)\n", c.Due.Local().Format(time.DateTime), relDue(c.Due, now))
	if c.LastReview != nil {
		fmt.Fprintf(tw, "  last review\t%s\n", relDue(*c.LastReview, now))
	} else {
		fmt.Fprintf(tw, "  last review\tnever\n")
	}
	fmt.Fprintf(tw, "  last rating\t%s\n", c.Rating)
	tw.Flush()
}

// printHistory writes review logs, newest first.
func printHistory(w io.Writer, logs []domain.ReviewLog, now time.Time) {
	if len(logs) == 0 {
		muted.Fprintln(w, "  no reviews yet")
		return
	}
	header.Fprintln(w, "history:")
	for _, l := range logs {
		fmt.Fprintf(w, "  %s  ", relDue(l.ReviewedAt, now))
		gradeColor(l.Grade).Fprintln(w, l.Grade)
	}
}

func printCounts(w io.Writer, counts domain.GradeCounts) {
	fmt.Fprintf(w, "again=%d hard=%d good=%d easy=%d\n", counts.Again, counts.Hard, counts.Good, counts.Easy)
}

func printDecks(w io.Writer, decks []domain.DeckSummary) {
	if len(decks) == 0 {
		muted.Fprintln(w, "no decks")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DECK\tCARDS\tDUE")
	for _, d := range decks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, strconv.Itoa(d.Total), strconv.Itoa(d.Due))
	}
	tw.Flush()
}
