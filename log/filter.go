package log

import (
	"maps"
	"slices"
	"sync"
)

// Filter decides which records are emitted.
//
// A Filter holds a severity threshold and a set of ignored target prefixes.
// All methods are safe for concurrent use, and every change is visible to
// the next call of [Filter.Accepts] on any goroutine.
type Filter struct {
	mutex     sync.RWMutex
	ignore    map[string]struct{}
	threshold Level
	match     Match
}

// NewFilter creates a new [Filter] configured by the given options.
// Only [WithLevel], [WithMatch], and [WithIgnore] are meaningful here.
func NewFilter(opts ...Option) *Filter {
	return newFilter(makeConfig(opts...))
}

func newFilter(cfg config) *Filter {
	f := &Filter{
		ignore:    make(map[string]struct{}, len(cfg.ignore)),
		threshold: cfg.level,
		match:     cfg.match,
	}

	for _, target := range cfg.ignore {
		f.ignore[target] = struct{}{}
	}

	return f
}

// SetThreshold replaces the severity threshold.
func (f *Filter) SetThreshold(level Level) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.threshold = level
}

// Threshold returns the current severity threshold.
func (f *Filter) Threshold() Level {
	if f == nil {
		return LevelOff
	}

	f.mutex.RLock()
	defer f.mutex.RUnlock()

	return f.threshold
}

// SetMatch replaces the prefix match mode.
func (f *Filter) SetMatch(m Match) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.match = m
}

// Match returns the current prefix match mode.
func (f *Filter) Match() Match {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	return f.match
}

// Ignore silences each target and everything nested below it.
// Ignoring a target twice has no additional effect.
func (f *Filter) Ignore(targets ...string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.ignore == nil {
		f.ignore = make(map[string]struct{}, len(targets))
	}

	for _, target := range targets {
		f.ignore[target] = struct{}{}
	}
}

// Allow reverses [Filter.Ignore] for each target.
//
// Only the exact string previously ignored is removed. Allowing a target
// that was never ignored, or a target nested below an ignored prefix, has
// no effect.
func (f *Filter) Allow(targets ...string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	for _, target := range targets {
		delete(f.ignore, target)
	}
}

// Ignored returns the ignored prefixes in sorted order.
func (f *Filter) Ignored() []string {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	return slices.Sorted(maps.Keys(f.ignore))
}

// Reset restores the threshold to [LevelOff] and clears the ignore set.
// The match mode is left unchanged.
func (f *Filter) Reset() {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.threshold = LevelOff
	clear(f.ignore)
}

// LevelEnabled reports whether level passes the threshold alone, without
// regard to any target.
func (f *Filter) LevelEnabled(level Level) bool {
	if f == nil {
		return false
	}

	f.mutex.RLock()
	defer f.mutex.RUnlock()

	return f.levelEnabled(level)
}

// Accepts reports whether a record with the given level and target should be
// emitted: the level must be at least as severe as the threshold, and no
// ignored prefix may match the target.
func (f *Filter) Accepts(level Level, target string) bool {
	if f == nil {
		return false
	}

	f.mutex.RLock()
	defer f.mutex.RUnlock()

	if !f.levelEnabled(level) {
		return false
	}

	for prefix := range f.ignore {
		if f.match.Matches(prefix, target) {
			return false
		}
	}

	return true
}

func (f *Filter) levelEnabled(level Level) bool {
	return f.threshold != LevelOff && level >= f.threshold
}
