package config

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/mcdirs/pkg/config"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidLogLevel is returned when the log level is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidConcurrency is returned when the check concurrency is negative.
	ErrInvalidConcurrency = errors.New("invalid check concurrency")
)

// Validator validates configuration semantics.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the entire configuration.
// Returns an error describing all validation failures.
func (v *Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.WithMessage(ErrInvalidConfig, "config is nil")
	}

	var validationErrors []error

	if cfg.Log != nil {
		if err := v.validateLogConfig(cfg.Log); err != nil {
			validationErrors = append(validationErrors, err)
		}
	}

	if cfg.Check != nil {
		if err := v.validateCheckConfig(cfg.Check); err != nil {
			validationErrors = append(validationErrors, err)
		}
	}

	if len(validationErrors) > 0 {
		return errors.Mark(
			errors.Wrapf(
				errors.Join(validationErrors...),
				"validation failed with %d error(s)",
				len(validationErrors),
			),
			ErrInvalidConfig,
		)
	}

	return nil
}

func (*Validator) validateLogConfig(cfg *config.LogConfig) error {
	if !cfg.Level.IsALevel() {
		return errors.Wrapf(ErrInvalidLogLevel, "log.level: %d", int(cfg.Level))
	}

	return nil
}

func (*Validator) validateCheckConfig(cfg *config.CheckConfig) error {
	if cfg.Concurrency < 0 {
		return errors.Wrapf(
			ErrInvalidConcurrency,
			"check.concurrency must not be negative, got %d",
			cfg.Concurrency,
		)
	}

	return nil
}
