package log

import (
	"io"
	"os"
	"slices"
)

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// config holds the construction parameters of a [Filter] and [Sink].
// It is never shared after construction, so it needs no locking.
type config struct {
	output io.Writer
	filter *Filter
	ignore []string
	level  Level
	match  Match
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	return apply(apply(config{}, WithDefaults(os.Stdout)), opts...)
}

// WithDefaults returns a functional option that sets the default
// configuration: output to w, [DefaultLevel], [DefaultMatch], no ignored
// targets, and a private [Filter].
func WithDefaults(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w
		c.filter = nil
		c.ignore = nil
		c.level = DefaultLevel
		c.match = DefaultMatch

		return c
	}
}

// WithOutput returns a functional option that sets the output [io.Writer]
// for log messages.
// If a nil writer is provided, [io.Discard] is used instead.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithLevel returns a functional option that sets the severity threshold.
// Messages less severe than level are discarded.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithMatch returns a functional option that sets how ignored prefixes are
// compared against targets.
func WithMatch(m Match) Option {
	return func(c config) config {
		c.match = m

		return c
	}
}

// WithIgnore returns a functional option that adds ignored targets.
func WithIgnore(targets ...string) Option {
	return func(c config) config {
		c.ignore = append(slices.Clip(c.ignore), targets...)

		return c
	}
}

// WithFilter returns a functional option that makes a [Sink] consult f
// instead of creating its own. When set, [WithLevel], [WithMatch], and
// [WithIgnore] have no effect on the sink.
func WithFilter(f *Filter) Option {
	return func(c config) config {
		c.filter = f

		return c
	}
}
