package log

import (
	"iter"
	"log/slog"
	"math"
	"strings"

	"github.com/ardnew/smlog/pkg"
)

// Level represents the severity of a log message.
// Higher values are more severe, following [slog.Level].
type Level slog.Level

const levelTraceMask = -8

const (
	LevelTrace Level = Level(levelTraceMask)  // trace
	LevelDebug Level = Level(slog.LevelDebug) // debug
	LevelInfo  Level = Level(slog.LevelInfo)  // info
	LevelWarn  Level = Level(slog.LevelWarn)  // warn
	LevelError Level = Level(slog.LevelError) // error

	// LevelOff is a threshold above every severity. It accepts nothing.
	LevelOff Level = math.MaxInt32 // off
)

// DefaultLevel is the threshold of a newly created [Filter].
const DefaultLevel = LevelOff

// named lists every named level from least to most severe.
var named = []Level{
	LevelTrace,
	LevelDebug,
	LevelInfo,
	LevelWarn,
	LevelError,
	LevelOff,
}

// Levels returns an iterator over the names of all defined log levels.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range named {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// String returns the lowercase level name.
// Levels between the named ones are written as an offset, e.g. "info+2".
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelOff:
		return "off"
	}

	return strings.ToLower(slog.Level(l).String())
}

// label returns the prefix written in front of every emitted line.
// Unnamed levels round down to the nearest named level.
func (l Level) label() string {
	switch {
	case l >= LevelError:
		return "error"
	case l >= LevelWarn:
		return "warning"
	case l >= LevelInfo:
		return "info"
	case l >= LevelDebug:
		return "debug"
	default:
		return "trace"
	}
}

// ParseLevel parses a string representation of a log level.
// Valid level strings are "off", "trace", "debug", "info", "warn" (or
// "warning"), and "error", case-insensitive, optionally followed by a "+" or
// "-" and an integer offset. See [slog.Level.UnmarshalText] for details.
func ParseLevel(s string) (Level, error) {
	name := strings.TrimSpace(s)

	// slog.Level.UnmarshalText recognizes neither trace, warning, nor off.
	switch strings.ToLower(name) {
	case "off", "none":
		return LevelOff, nil
	case "trace":
		return LevelTrace, nil
	case "warning":
		return LevelWarn, nil
	}

	l := new(slog.Level)

	err := l.UnmarshalText([]byte(name))
	if err != nil {
		return DefaultLevel, pkg.ErrInvalidLevel.Wrapf("%q", s)
	}

	return Level(*l), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseLevel].
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = level

	return nil
}
