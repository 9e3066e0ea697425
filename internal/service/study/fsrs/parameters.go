package fsrs

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// Parameters holds all scheduler configuration.
type Parameters struct {
	Weights          Weights
	DesiredRetention float64
	LearningSteps    []time.Duration
	// RelearningSteps may be empty: a lapse then stays in Review.
	RelearningSteps []time.Duration
	// MaximumInterval caps any Review interval, in days.
	MaximumInterval int
}

// MaxIntervalLimit is the largest MaximumInterval whose day count still fits
// in a time.Duration.
const MaxIntervalLimit = int(math.MaxInt64 / int64(24*time.Hour))

// DefaultParameters returns the stock configuration.
func DefaultParameters() Parameters {
	return Parameters{
		Weights:          DefaultWeights,
		DesiredRetention: 0.9,
		LearningSteps:    []time.Duration{time.Minute, 10 * time.Minute},
		RelearningSteps:  []time.Duration{10 * time.Minute},
		MaximumInterval:  36500,
	}
}

// Validate rejects configurations the scheduler cannot run with.
func (p Parameters) Validate() error {
	if err := p.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	if math.IsNaN(p.DesiredRetention) || p.DesiredRetention <= 0 || p.DesiredRetention > 1 {
		return fmt.Errorf("%w: desired retention %v out of range (0, 1]", ErrInvalidParameters, p.DesiredRetention)
	}
	if p.MaximumInterval < 1 {
		return fmt.Errorf("%w: maximum interval %d must be at least 1 day", ErrInvalidParameters, p.MaximumInterval)
	}
	if p.MaximumInterval > MaxIntervalLimit {
		return fmt.Errorf("%w: maximum interval %d exceeds %d days", ErrInvalidParameters, p.MaximumInterval, MaxIntervalLimit)
	}
	if len(p.LearningSteps) == 0 {
		return fmt.Errorf("%w: learning steps must not be empty", ErrInvalidParameters)
	}
	for i, d := range p.LearningSteps {
		if d <= 0 {
			return fmt.Errorf("%w: learning step %d must be positive (got %s)", ErrInvalidParameters, i, d)
		}
	}
	for i, d := range p.RelearningSteps {
		if d <= 0 {
			return fmt.Errorf("%w: relearning step %d must be positive (got %s)", ErrInvalidParameters, i, d)
		}
	}
	return nil
}

// NextInterval converts stability into a Review interval in whole days.
//
//	I = round((S / Factor) * (r^(1/Decay) - 1)), clamped to [1, MaximumInterval]
//
// Rounding is half-to-even. The bound is applied before the conversion to
// int so that huge stabilities cannot wrap around.
func (p Parameters) NextInterval(stability float64) int {
	ivl := (stability / Factor) * (math.Pow(p.DesiredRetention, 1/Decay) - 1)
	ivl = math.Min(math.RoundToEven(ivl), float64(p.MaximumInterval))
	return clampInterval(int(ivl), p.MaximumInterval)
}

func (p Parameters) clone() Parameters {
	p.LearningSteps = slices.Clone(p.LearningSteps)
	p.RelearningSteps = slices.Clone(p.RelearningSteps)
	return p
}

func clampInterval(interval, maxDays int) int {
	if interval < 1 {
		return 1
	}
	if interval > maxDays {
		return maxDays
	}
	return interval
}
