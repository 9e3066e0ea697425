package fsrs

import (
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// Card holds the FSRS state of a card.
type Card struct {
	State      domain.CardState
	Step       *int
	Stability  float64
	Difficulty float64
	Due        time.Time
	LastReview *time.Time
	ReviewedAt *time.Time
	// DaysSinceLastReview is derived from LastReview when nil.
	DaysSinceLastReview *int
	Rating              Rating
}

// Scheduler computes next review states. It is immutable once built and
// safe for concurrent use.
type Scheduler struct {
	params Parameters
}

// NewScheduler validates params and returns a Scheduler holding a private copy.
func NewScheduler(params Parameters) (*Scheduler, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{params: params.clone()}, nil
}

// Parameters returns a copy of the scheduler configuration.
func (s *Scheduler) Parameters() Parameters {
	return s.params.clone()
}

// Schedule applies rating to card as a review happening at now and returns
// the updated card. The input card is not modified.
func (s *Scheduler) Schedule(card Card, rating Rating, now time.Time) (Card, error) {
	if err := checkInput(card, rating, now); err != nil {
		return Card{}, err
	}

	elapsed := ElapsedDays(card.LastReview, now)
	if card.DaysSinceLastReview != nil {
		elapsed = *card.DaysSinceLastReview
	}

	stability, difficulty := s.nextMemoryState(card, rating, elapsed)

	var (
		state    domain.CardState
		step     *int
		interval time.Duration
	)
	switch card.State {
	case domain.CardStateLearning:
		state, step, interval = s.stepTransition(card.State, *card.Step, rating, s.params.LearningSteps, stability)
	case domain.CardStateRelearning:
		state, step, interval = s.stepTransition(card.State, *card.Step, rating, s.params.RelearningSteps, stability)
	case domain.CardStateReview:
		state, step, interval = s.reviewTransition(rating, stability)
	}

	reviewedAt := now
	return Card{
		State:               state,
		Step:                step,
		Stability:           stability,
		Difficulty:          difficulty,
		Due:                 now.Add(interval),
		LastReview:          &reviewedAt,
		ReviewedAt:          &reviewedAt,
		DaysSinceLastReview: &elapsed,
		Rating:              rating,
	}, nil
}

// nextMemoryState updates stability and difficulty. Same-day reviews use
// the short-term formula; otherwise stability follows the forget or recall
// branch using the pre-update difficulty. A card never reviewed before has
// zero retrievability whatever elapsed says.
func (s *Scheduler) nextMemoryState(card Card, rating Rating, elapsed int) (float64, float64) {
	w := s.params.Weights
	if elapsed < 1 {
		return ShortTermStability(w, card.Stability, rating), NextDifficulty(w, card.Difficulty, rating)
	}
	var r float64
	if card.LastReview != nil {
		r = retrievabilityAfter(card.Stability, elapsed)
	}
	return NextStability(w, card.Stability, card.Difficulty, r, rating), NextDifficulty(w, card.Difficulty, rating)
}

// stepTransition handles Learning and Relearning cards walking through steps.
// A step beyond the configured sequence (the steps shrank since the card was
// scheduled) graduates the card to Review.
func (s *Scheduler) stepTransition(state domain.CardState, step int, rating Rating, steps []time.Duration, stability float64) (domain.CardState, *int, time.Duration) {
	if step >= len(steps) {
		return s.graduate(stability)
	}

	switch rating {
	case Again:
		return state, ptr(0), steps[0]
	case Hard:
		switch {
		case step == 0 && len(steps) == 1:
			return state, ptr(step), time.Duration(float64(steps[0]) * 1.5)
		case step == 0:
			return state, ptr(step), (steps[0] + steps[1]) / 2
		default:
			return state, ptr(step), steps[step]
		}
	case Good:
		if step+1 == len(steps) {
			return s.graduate(stability)
		}
		return state, ptr(step + 1), steps[step+1]
	case Easy:
		return s.graduate(stability)
	}
	panic("unreachable: rating validated")
}

func (s *Scheduler) reviewTransition(rating Rating, stability float64) (domain.CardState, *int, time.Duration) {
	switch rating {
	case Again:
		if len(s.params.RelearningSteps) == 0 {
			return s.graduate(stability)
		}
		return domain.CardStateRelearning, ptr(0), s.params.RelearningSteps[0]
	case Hard, Good, Easy:
		return s.graduate(stability)
	}
	panic("unreachable: rating validated")
}

// graduate moves (or keeps) a card in Review with a day interval.
func (s *Scheduler) graduate(stability float64) (domain.CardState, *int, time.Duration) {
	days := s.params.NextInterval(stability)
	return domain.CardStateReview, nil, time.Duration(days) * 24 * time.Hour
}

func checkInput(card Card, rating Rating, now time.Time) error {
	if !rating.IsValid() {
		return fmt.Errorf("%w: unknown rating %d", ErrPrecondition, int(rating))
	}
	if now.IsZero() {
		return fmt.Errorf("%w: review time is required", ErrPrecondition)
	}

	switch card.State {
	case domain.CardStateLearning, domain.CardStateRelearning:
		if card.Step == nil {
			return fmt.Errorf("%w: step is required in state %s", ErrPrecondition, card.State)
		}
		if *card.Step < 0 {
			return fmt.Errorf("%w: negative step %d", ErrPrecondition, *card.Step)
		}
	case domain.CardStateReview:
		if card.Step != nil {
			return fmt.Errorf("%w: step must be absent in state %s", ErrPrecondition, card.State)
		}
	default:
		return fmt.Errorf("%w: unknown card state %q", ErrPrecondition, card.State)
	}

	if math.IsNaN(card.Stability) || math.IsInf(card.Stability, 0) || card.Stability <= 0 {
		return fmt.Errorf("%w: stability must be positive and finite (got %v)", ErrPrecondition, card.Stability)
	}
	if math.IsNaN(card.Difficulty) || card.Difficulty < 1 || card.Difficulty > 10 {
		return fmt.Errorf("%w: difficulty must be within [1, 10] (got %v)", ErrPrecondition, card.Difficulty)
	}
	if card.DaysSinceLastReview != nil && *card.DaysSinceLastReview < 0 {
		return fmt.Errorf("%w: negative days since last review %d", ErrPrecondition, *card.DaysSinceLastReview)
	}
	if card.LastReview != nil && now.Before(*card.LastReview) {
		return fmt.Errorf("%w: review time %s precedes last review %s", ErrPrecondition,
			now.Format(time.RFC3339), card.LastReview.Format(time.RFC3339))
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
