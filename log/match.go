package log

import (
	"strings"

	"github.com/ardnew/smlog/pkg"
)

// Match selects how an ignored prefix is compared against a record's target.
type Match int

const (
	// MatchPath matches the prefix itself and any target nested below it,
	// i.e. the prefix followed by one of "::", ".", or "/".
	// Ignoring "foo" silences "foo" and "foo::bar" but not "foobar".
	MatchPath Match = iota // path
	// MatchRaw matches any target that begins with the prefix.
	// Ignoring "foo" silences "foobar" as well.
	MatchRaw // raw
)

// DefaultMatch is the match mode of a newly created [Filter].
const DefaultMatch = MatchPath

// separators delimit the components of a hierarchical target.
var separators = []string{"::", ".", "/"}

// String returns the lowercase match mode name.
func (m Match) String() string {
	switch m {
	case MatchPath:
		return "path"
	case MatchRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// ParseMatch parses a string representation of a match mode.
// Valid strings are "path" and "raw".
func ParseMatch(s string) (Match, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "path":
		return MatchPath, nil
	case "raw":
		return MatchRaw, nil
	default:
		return DefaultMatch, pkg.ErrInvalidMatch.Wrapf("%q", s)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (m Match) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseMatch].
func (m *Match) UnmarshalText(text []byte) error {
	match, err := ParseMatch(string(text))
	if err != nil {
		return err
	}

	*m = match

	return nil
}

// Matches reports whether target is silenced by ignoring prefix.
func (m Match) Matches(prefix, target string) bool {
	if !strings.HasPrefix(target, prefix) {
		return false
	}

	if m == MatchRaw || len(target) == len(prefix) {
		return true
	}

	rest := target[len(prefix):]

	for _, sep := range separators {
		if strings.HasSuffix(prefix, sep) || strings.HasPrefix(rest, sep) {
			return true
		}
	}

	return false
}
