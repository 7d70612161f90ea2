package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Sink is a [slog.Handler] that writes accepted records as plain lines.
//
// Each line of an accepted record's message is written as
//
//	<label>: <line>
//
// where label is one of "error", "warning", "info", "debug", or "trace".
// Attributes and groups are accepted but never rendered. Records rejected by
// the sink's [Filter] produce no output.
type Sink struct {
	filter  *Filter
	mu      *sync.Mutex
	w       io.Writer
	target  string
	bound   bool
	grouped bool
}

// NewSink creates a new [Sink] configured by the given options.
// Without [WithFilter], the sink owns a new [Filter] built from the same
// options. Without [WithOutput], the sink writes to [os.Stdout].
func NewSink(opts ...Option) *Sink {
	cfg := makeConfig(opts...)

	filter := cfg.filter
	if filter == nil {
		filter = newFilter(cfg)
	}

	return &Sink{
		filter: filter,
		mu:     &sync.Mutex{},
		w:      cfg.output,
	}
}

// Filter returns the [Filter] consulted by the sink.
func (s *Sink) Filter() *Filter { return s.filter }

// Accepts reports whether a record with the given level and target would be
// written.
func (s *Sink) Accepts(level Level, target string) bool {
	return s.filter.Accepts(level, target)
}

// Enabled implements [slog.Handler].
//
// When the target is already known, from [slog.Logger.With] or the context,
// the full filter applies. Otherwise only the threshold is checked, and
// [Sink.Handle] applies the ignore set once the call site is known.
func (s *Sink) Enabled(ctx context.Context, level slog.Level) bool {
	if target, ok := s.knownTarget(ctx); ok {
		return s.filter.Accepts(Level(level), target)
	}

	return s.filter.LevelEnabled(Level(level))
}

// Handle implements [slog.Handler].
//
// Write errors are discarded: logging never interrupts the caller, and
// Handle always returns nil.
func (s *Sink) Handle(ctx context.Context, r slog.Record) error {
	level := Level(r.Level)

	if !s.filter.Accepts(level, s.recordTarget(ctx, r)) {
		return nil
	}

	buf := new(bytes.Buffer)
	writeLines(buf, level.label(), r.Message)

	if buf.Len() == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.w.Write(buf.Bytes())

	return nil
}

// WithAttrs implements [slog.Handler]. A string attribute named [TargetKey]
// binds the target of the returned handler.
func (s *Sink) WithAttrs(attrs []slog.Attr) slog.Handler {
	h := *s

	if !h.grouped {
		for _, a := range attrs {
			if a.Key == TargetKey {
				h.target, h.bound = a.Value.Resolve().String(), true
			}
		}
	}

	return &h
}

// WithGroup implements [slog.Handler]. Attributes added after a group are
// never treated as a target.
func (s *Sink) WithGroup(name string) slog.Handler {
	h := *s

	if name != "" {
		h.grouped = true
	}

	return &h
}

// Flush does nothing. Every record is written before [Sink.Handle] returns.
func (*Sink) Flush() error { return nil }

// knownTarget returns the target bound to the handler or, failing that, the
// target stored in ctx.
func (s *Sink) knownTarget(ctx context.Context) (string, bool) {
	if s.bound {
		return s.target, true
	}

	return TargetFrom(ctx)
}

// recordTarget resolves the target of r, preferring in order: a target
// attribute on the record, the handler's bound target, the context's
// target, and the package of the record's call site.
func (s *Sink) recordTarget(ctx context.Context, r slog.Record) string {
	var (
		target string
		found  bool
	)

	if !s.grouped {
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == TargetKey {
				target, found = a.Value.Resolve().String(), true

				return false
			}

			return true
		})
	}

	if found {
		return target
	}

	if target, ok := s.knownTarget(ctx); ok {
		return target
	}

	return packageOf(r.PC)
}

// writeLines writes each line of msg to buf prefixed with label.
// Lines end at "\n" with an optional preceding "\r"; a final line terminator
// does not start another line, and an empty message writes nothing.
func writeLines(buf *bytes.Buffer, label, msg string) {
	for line := range strings.Lines(msg) {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		buf.WriteString(label)
		buf.WriteString(": ")
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}
