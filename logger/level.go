package logger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown log level")

// Level is a severity threshold. Levels are ordered
// NoneLevel < ErrorLevel < WarnLevel < InfoLevel < DebugLevel.
type Level int

const (
	// NoneLevel disables all leveled output.
	NoneLevel Level = iota
	// ErrorLevel enables error logging.
	ErrorLevel
	// WarnLevel enables warning and error logging.
	WarnLevel
	// InfoLevel enables informational, warning and error logging.
	InfoLevel
	// DebugLevel enables every level.
	DebugLevel
)

// AllLevels returns all supported levels in ordinal order.
func AllLevels() []Level {
	return []Level{
		NoneLevel,
		ErrorLevel,
		WarnLevel,
		InfoLevel,
		DebugLevel,
	}
}

func (l Level) String() string {
	switch l {
	case NoneLevel:
		return "NONE"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// Tag returns the short identifier printed at the start of each line.
func (l Level) Tag() string {
	return styleFor(l).tag
}

// Color returns the ANSI escape used for lines at this level.
func (l Level) Color() string {
	return styleFor(l).color
}

// ParseLevel parses a level name, short tag or ordinal.
// Matching is case-insensitive; surrounding whitespace is ignored.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "OFF", "0":
		return NoneLevel, nil
	case "ERROR", "E", "1":
		return ErrorLevel, nil
	case "WARN", "WARNING", "W", "2":
		return WarnLevel, nil
	case "INFO", "I", "3":
		return InfoLevel, nil
	case "DEBUG", "D", "4":
		return DebugLevel, nil
	}
	return NoneLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a Level can be bound
// directly from environment variables and command-line flags.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
