package domain

import "strings"

// CardState represents the FSRS learning state of a card.
type CardState string

const (
	CardStateLearning   CardState = "LEARNING"
	CardStateReview     CardState = "REVIEW"
	CardStateRelearning CardState = "RELEARNING"
)

func (s CardState) String() string { return string(s) }

func (s CardState) IsValid() bool {
	switch s {
	case CardStateLearning, CardStateReview, CardStateRelearning:
		return true
	}
	return false
}

// ReviewGrade represents the user's self-assessed recall quality.
type ReviewGrade string

const (
	ReviewGradeAgain ReviewGrade = "AGAIN"
	ReviewGradeHard  ReviewGrade = "HARD"
	ReviewGradeGood  ReviewGrade = "GOOD"
	ReviewGradeEasy  ReviewGrade = "EASY"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	switch g {
	case ReviewGradeAgain, ReviewGradeHard, ReviewGradeGood, ReviewGradeEasy:
		return true
	}
	return false
}

// ParseReviewGrade accepts a grade name in any case or its numeric form (1 = AGAIN .. 4 = EASY).
// The second result is false for anything else.
func ParseReviewGrade(s string) (ReviewGrade, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1", string(ReviewGradeAgain):
		return ReviewGradeAgain, true
	case "2", string(ReviewGradeHard):
		return ReviewGradeHard, true
	case "3", string(ReviewGradeGood):
		return ReviewGradeGood, true
	case "4", string(ReviewGradeEasy):
		return ReviewGradeEasy, true
	}
	return "", false
}
