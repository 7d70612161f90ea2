package cmd

import (
	"slices"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/smlog/log"
	"github.com/ardnew/smlog/pkg"
)

// Level is a [log.Level] flag value. Parsing an unknown name fails with the
// closest valid level name as a suggestion.
type Level log.Level

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	level, err := log.ParseLevel(string(text))
	if err != nil {
		if s, ok := suggestLevel(string(text)); ok {
			return pkg.ErrInvalidLevel.Wrapf("%q (did you mean %q?)", text, s)
		}

		return err
	}

	*l = Level(level)

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return log.Level(l).MarshalText()
}

func (l Level) String() string { return log.Level(l).String() }

// suggestLevel returns the level name that best matches s. Names containing s
// as a subsequence are preferred (an abbreviation such as "dbg"); failing
// that, the longest name that is itself a subsequence of s is chosen (a typo
// such as "warnign").
func suggestLevel(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	names := slices.Collect(log.Levels())

	if matches := fuzzy.Find(s, names); len(matches) > 0 {
		return matches[0].Str, true
	}

	var (
		best  string
		score int
		found bool
	)

	for _, name := range names {
		matches := fuzzy.Find(name, []string{s})
		if len(matches) == 0 {
			continue
		}

		if !found || len(name) > len(best) ||
			(len(name) == len(best) && matches[0].Score > score) {
			best, score, found = name, matches[0].Score, true
		}
	}

	return best, found
}
