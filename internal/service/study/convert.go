package study

import (
	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study/fsrs"
)

// parametersFromConfig builds scheduler parameters from the deck settings.
// An all-zero weight table selects the default weights.
func parametersFromConfig(cfg domain.SRSConfig) fsrs.Parameters {
	weights := fsrs.Weights(cfg.Weights)
	if cfg.Weights == ([19]float64{}) {
		weights = fsrs.DefaultWeights
	}
	return fsrs.Parameters{
		Weights:          weights,
		DesiredRetention: cfg.DesiredRetention,
		LearningSteps:    cfg.LearningSteps,
		RelearningSteps:  cfg.RelearningSteps,
		MaximumInterval:  cfg.MaxIntervalDays,
	}
}

// gradeToRating maps a domain ReviewGrade to an FSRS Rating.
// Unknown grades map to 0, which the scheduler rejects.
func gradeToRating(grade domain.ReviewGrade) fsrs.Rating {
	switch grade {
	case domain.ReviewGradeAgain:
		return fsrs.Again
	case domain.ReviewGradeHard:
		return fsrs.Hard
	case domain.ReviewGradeGood:
		return fsrs.Good
	case domain.ReviewGradeEasy:
		return fsrs.Easy
	}
	return 0
}

func ratingToGrade(rating fsrs.Rating) domain.ReviewGrade {
	switch rating {
	case fsrs.Again:
		return domain.ReviewGradeAgain
	case fsrs.Hard:
		return domain.ReviewGradeHard
	case fsrs.Good:
		return domain.ReviewGradeGood
	case fsrs.Easy:
		return domain.ReviewGradeEasy
	}
	return ""
}

// cardToFSRS converts a domain Card to an fsrs.Card. The stored
// days_since_last_review is dropped so the scheduler re-derives it from
// last_review and the review time.
func cardToFSRS(card *domain.Card) fsrs.Card {
	return fsrs.Card{
		State:      card.State,
		Step:       card.Step,
		Stability:  card.Stability,
		Difficulty: card.Difficulty,
		Due:        card.Due,
		LastReview: card.LastReview,
		ReviewedAt: card.ReviewedAt,
		Rating:     gradeToRating(card.Rating),
	}
}

// applyFSRS copies a scheduling result onto card.
func applyFSRS(card *domain.Card, result fsrs.Card) {
	card.State = result.State
	card.Step = result.Step
	card.Stability = result.Stability
	card.Difficulty = result.Difficulty
	card.Due = result.Due
	card.LastReview = result.LastReview
	card.ReviewedAt = result.ReviewedAt
	card.DaysSinceLastReview = result.DaysSinceLastReview
	card.Rating = ratingToGrade(result.Rating)
}
