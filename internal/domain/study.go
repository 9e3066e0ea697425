package domain

import (
	"time"
)

// SRSConfig holds the deck-wide scheduling settings (pure domain type).
type SRSConfig struct {
	DesiredRetention float64
	MaxIntervalDays  int
	LearningSteps    []time.Duration
	RelearningSteps  []time.Duration
	Weights          [19]float64
	UndoWindow       time.Duration
}

// GradeCounts holds per-grade counters for a batch of reviews.
type GradeCounts struct {
	Again int
	Hard  int
	Good  int
	Easy  int
}

// Add increments the counter for grade.
func (g *GradeCounts) Add(grade ReviewGrade, n int) {
	switch grade {
	case ReviewGradeAgain:
		g.Again += n
	case ReviewGradeHard:
		g.Hard += n
	case ReviewGradeGood:
		g.Good += n
	case ReviewGradeEasy:
		g.Easy += n
	}
}

// DeckSummary is a deck name with its card counts.
type DeckSummary struct {
	Name  string
	Total int
	Due   int
}
