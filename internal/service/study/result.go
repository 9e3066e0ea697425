package study

import "github.com/heartmarshall/myenglish-srs/internal/domain"

// GroupResult holds the outcome of rating a review group.
type GroupResult struct {
	Cards  []*domain.Card
	Counts domain.GradeCounts
}

// RegisterResult holds the outcome of adding words to a deck.
type RegisterResult struct {
	Created         int
	SkippedExisting int
}
