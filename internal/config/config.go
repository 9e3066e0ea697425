package config

import (
	"time"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	SRS      SRSConfig      `yaml:"srs"`
	Study    StudyConfig    `yaml:"study"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// SRSConfig holds the FSRS scheduling parameters.
type SRSConfig struct {
	DesiredRetention   float64       `yaml:"desired_retention" env:"SRS_DESIRED_RETENTION" env-default:"0.9"`
	MaxIntervalDays    int           `yaml:"max_interval_days" env:"SRS_MAX_INTERVAL"      env-default:"36500"`
	LearningStepsRaw   string        `yaml:"learning_steps"    env:"SRS_LEARNING_STEPS"    env-default:"1m,10m"`
	RelearningStepsRaw string        `yaml:"relearning_steps"  env:"SRS_RELEARNING_STEPS"  env-default:"10m"`
	WeightsRaw         string        `yaml:"weights"           env:"SRS_WEIGHTS"`
	UndoWindow         time.Duration `yaml:"undo_window"       env:"SRS_UNDO_WINDOW"       env-default:"10m"`

	// LearningSteps is parsed from LearningStepsRaw during validation.
	LearningSteps []time.Duration `yaml:"-" env:"-"`
	// RelearningSteps is parsed from RelearningStepsRaw during validation.
	RelearningSteps []time.Duration `yaml:"-" env:"-"`
	// Weights is parsed from WeightsRaw during validation.
	// All zeros when WeightsRaw is empty.
	Weights [19]float64 `yaml:"-" env:"-"`
}

// StudyConfig holds study session settings.
type StudyConfig struct {
	DefaultDeck string `yaml:"default_deck" env:"STUDY_DEFAULT_DECK" env-default:"default"`
	GroupSize   int    `yaml:"group_size"   env:"STUDY_GROUP_SIZE"   env-default:"5"`
}

// ToDomain converts the parsed SRS settings into the domain type consumed by the study service.
func (s SRSConfig) ToDomain() domain.SRSConfig {
	return domain.SRSConfig{
		DesiredRetention: s.DesiredRetention,
		MaxIntervalDays:  s.MaxIntervalDays,
		LearningSteps:    s.LearningSteps,
		RelearningSteps:  s.RelearningSteps,
		Weights:          s.Weights,
		UndoWindow:       s.UndoWindow,
	}
}
