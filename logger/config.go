package logger

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is returned when the logging environment cannot be parsed.
var ErrInvalidConfig = errors.New("logger configuration not valid")

// Config gates the two output channels. The owning caller may change either
// field at any time; the logging functions only read it, on every call.
// The zero value disables raw output and every level above NoneLevel.
type Config struct {
	// GeneralLevel is the severity threshold for leveled output.
	// Default: InfoLevel when loaded from the environment.
	GeneralLevel Level `env:"LOGGER_LEVEL" envDefault:"INFO"`
	// RawEnabled turns the raw channel on, independently of GeneralLevel.
	// Default: false
	RawEnabled bool `env:"LOGGER_RAW" envDefault:"false"`
}

// Enabled reports whether a leveled line at level would be printed.
// A nil Config enables nothing.
func (c *Config) Enabled(level Level) bool {
	return c != nil && c.GeneralLevel >= level
}

// LoadConfig builds a Config from LOGGER_LEVEL and LOGGER_RAW.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, fieldErrors(err))
	}
	return cfg, nil
}

// fieldErrors exposes the cause of each field parse failure, so callers can
// match errors such as ErrUnknownLevel with errors.Is.
func fieldErrors(err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return err
	}
	errs := make([]error, 0, len(agg.Errors))
	for _, e := range agg.Errors {
		var pe env.ParseError
		if errors.As(e, &pe) && pe.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", pe.Name, pe.Err))
			continue
		}
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}
