package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/myenglish-srs/internal/service/study/fsrs"
)

const maxGroupSize = 100

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn must not be empty")
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if strings.TrimSpace(c.Study.DefaultDeck) == "" {
		return fmt.Errorf("study.default_deck must not be empty")
	}
	if c.Study.GroupSize < 1 || c.Study.GroupSize > maxGroupSize {
		return fmt.Errorf("study.group_size must be in [1, %d] (got %d)", maxGroupSize, c.Study.GroupSize)
	}

	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (s *SRSConfig) validate() error {
	if s.DesiredRetention <= 0 || s.DesiredRetention >= 1 {
		return fmt.Errorf("desired_retention must be in (0, 1) (got %v)", s.DesiredRetention)
	}
	if s.MaxIntervalDays <= 0 || s.MaxIntervalDays > fsrs.MaxIntervalLimit {
		return fmt.Errorf("max_interval_days must be in [1, %d] (got %d)", fsrs.MaxIntervalLimit, s.MaxIntervalDays)
	}
	if s.UndoWindow < 0 {
		return fmt.Errorf("undo_window must be >= 0 (got %v)", s.UndoWindow)
	}

	steps, err := ParseLearningSteps(s.LearningStepsRaw)
	if err != nil {
		return fmt.Errorf("learning_steps: %w", err)
	}
	s.LearningSteps = steps

	steps, err = ParseLearningSteps(s.RelearningStepsRaw)
	if err != nil {
		return fmt.Errorf("relearning_steps: %w", err)
	}
	s.RelearningSteps = steps

	weights, err := ParseWeights(s.WeightsRaw)
	if err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	s.Weights = weights

	return nil
}

// ParseLearningSteps parses a comma-separated string of durations (e.g. "1m,10m")
// into a slice of time.Duration. An empty string returns a nil slice.
func ParseLearningSteps(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	steps := make([]time.Duration, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("step %q must be positive", p)
		}
		steps = append(steps, d)
	}

	return steps, nil
}

// ParseWeights parses a comma-separated list of exactly 19 FSRS weights.
// An empty string returns all zeros, which selects the default weights.
func ParseWeights(raw string) ([19]float64, error) {
	var weights [19]float64

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return weights, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != len(weights) {
		return weights, fmt.Errorf("expected %d values, got %d", len(weights), len(parts))
	}

	for i, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return weights, fmt.Errorf("invalid weight %d %q: %w", i, p, err)
		}
		weights[i] = w
	}

	return weights, nil
}
