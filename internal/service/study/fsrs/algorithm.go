// Package fsrs implements the FSRS spaced repetition scheduler: the
// stability/difficulty memory model and the Learning/Review/Relearning
// state machine. Everything here is pure arithmetic over explicit inputs.
package fsrs

import (
	"fmt"
	"math"
	"time"
)

// Decay is the exponent of the power-law forgetting curve.
const Decay = -0.5

// Factor scales elapsed days so that R(S, S) = 0.9.
var Factor = math.Pow(0.9, 1/Decay) - 1

// Weights is the 19-value parameter table driving every stability and
// difficulty formula. Alternate tunings can be swapped in per deployment.
type Weights [19]float64

// DefaultWeights are the stock weights (w0..w18).
var DefaultWeights = Weights{
	0.40255,  // w0  - initial stability for Again
	1.18385,  // w1  - initial stability for Hard
	3.173,    // w2  - initial stability for Good
	15.69105, // w3  - initial stability for Easy
	7.1949,   // w4  - initial difficulty
	0.5345,   // w5  - initial difficulty slope
	1.4604,   // w6  - difficulty delta: -w6*(G-3)
	0.0046,   // w7  - difficulty mean reversion weight
	1.54575,  // w8  - recall stability: exp(w8)
	0.1192,   // w9  - recall stability: S^(-w9)
	1.01925,  // w10 - recall stability: exp(w10*(1-R)) - 1
	1.9395,   // w11 - forget stability: multiplier
	0.11,     // w12 - forget stability: D^(-w12)
	0.29605,  // w13 - forget stability: (S+1)^w13 - 1
	2.2698,   // w14 - forget stability: exp(w14*(1-R))
	0.2315,   // w15 - recall stability: hard penalty
	2.9898,   // w16 - recall stability: easy bonus
	0.51655,  // w17 - short-term stability
	0.6621,   // w18 - short-term stability
}

// Validate checks that every weight is a finite number.
func (w Weights) Validate() error {
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weight w[%d] is invalid: %v", i, v)
		}
	}
	return nil
}

// Rating represents the user's recall quality.
type Rating int

const (
	Again Rating = 1
	Hard  Rating = 2
	Good  Rating = 3
	Easy  Rating = 4
)

func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) String() string {
	switch r {
	case Again:
		return "Again"
	case Hard:
		return "Hard"
	case Good:
		return "Good"
	case Easy:
		return "Easy"
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// ElapsedDays returns the whole days between lastReview and now.
// A nil lastReview means this is the first review: zero elapsed days.
func ElapsedDays(lastReview *time.Time, now time.Time) int {
	if lastReview == nil {
		return 0
	}
	return max(0, int(now.Sub(*lastReview)/(24*time.Hour)))
}

// Retrievability estimates the probability of recall at now.
//
//	R(t, S) = (1 + Factor * t / S) ^ Decay
//
// It is 0 when the card has never been reviewed.
func Retrievability(stability float64, lastReview *time.Time, now time.Time) float64 {
	if lastReview == nil {
		return 0
	}
	return retrievabilityAfter(stability, ElapsedDays(lastReview, now))
}

func retrievabilityAfter(stability float64, elapsedDays int) float64 {
	return math.Pow(1+Factor*float64(elapsedDays)/stability, Decay)
}

// ShortTermStability is used when the previous review was less than a day ago.
//
//	S' = S * e^(w17 * (G - 3 + w18))
func ShortTermStability(w Weights, s float64, rating Rating) float64 {
	return s * math.Exp(w[17]*(float64(rating)-3+w[18]))
}

// NextDifficulty applies linear damping and mean reversion toward the
// prior difficulty, then clamps to [1, 10].
//
//	D'' = D + (10 - D) * (-w6 * (G - 3)) / 9
//	D'  = w7 * D + (1 - w7) * D''
func NextDifficulty(w Weights, d float64, rating Rating) float64 {
	delta := -(w[6] * (float64(rating) - 3))
	damped := d + (10-d)*delta/9
	next := w[7]*d + (1-w[7])*damped
	return clampDifficulty(next)
}

// NextForgetStability is the post-lapse stability: the smaller of the
// long-term estimate and the short-term-consistent bound, so a lapse never
// increases stability.
//
//	S'f = min(w11 * D^(-w12) * ((S+1)^w13 - 1) * e^((1-R)*w14), S / e^(w17*w18))
func NextForgetStability(w Weights, s, d, r float64) float64 {
	longTerm := w[11] *
		math.Pow(d, -w[12]) *
		(math.Pow(s+1, w[13]) - 1) *
		math.Exp((1-r)*w[14])
	shortTerm := s / math.Exp(w[17]*w[18])
	return math.Min(longTerm, shortTerm)
}

// NextRecallStability is the post-recall stability for Hard, Good and Easy.
//
//	S'r = S * (1 + e^w8 * (11-D) * S^(-w9) * (e^((1-R)*w10) - 1) * hardPenalty * easyBonus)
func NextRecallStability(w Weights, s, d, r float64, rating Rating) float64 {
	hardPenalty := 1.0
	if rating == Hard {
		hardPenalty = w[15]
	}
	easyBonus := 1.0
	if rating == Easy {
		easyBonus = w[16]
	}

	return s * (1 +
		math.Exp(w[8])*
			(11-d)*
			math.Pow(s, -w[9])*
			(math.Exp((1-r)*w[10])-1)*
			hardPenalty*
			easyBonus)
}

// NextStability dispatches to the forget or recall formula by rating.
func NextStability(w Weights, s, d, r float64, rating Rating) float64 {
	if rating == Again {
		return NextForgetStability(w, s, d, r)
	}
	return NextRecallStability(w, s, d, r, rating)
}

func clampDifficulty(d float64) float64 {
	return math.Max(1, math.Min(10, d))
}
