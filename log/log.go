package log

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"time"
)

// Logger provides a concurrency-safe simplified logging interface over a
// [Sink].
//
// The zero value discards everything.
type Logger struct {
	*slog.Logger

	sink *Sink
	gate *slog.LevelVar
}

// Make creates a new [Logger] that writes to the specified writer through a
// private [Sink] and [Filter].
// The default threshold is [DefaultLevel], which accepts nothing, so at least
// [WithLevel] is usually given.
func Make(w io.Writer, opts ...Option) Logger {
	sink := NewSink(append([]Option{WithOutput(w)}, opts...)...)

	return Logger{
		Logger: slog.New(sink),
		sink:   sink,
	}
}

// Target returns a new [Logger] whose records are attributed to target.
func (l Logger) Target(target string) Logger {
	return l.With(slog.String(TargetKey, target))
}

// With returns a new [Logger] that includes the given attributes in each log
// message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	return Logger{
		Logger: slog.New(l.Handler().WithAttrs(attrs)),
		sink:   l.sink,
		gate:   l.gate,
	}
}

// Filter returns the [Filter] consulted by the logger's sink.
func (l Logger) Filter() *Filter {
	if l.sink == nil {
		return nil
	}

	return l.sink.filter
}

// Level returns the current severity threshold.
func (l Logger) Level() Level {
	return l.Filter().Threshold()
}

// TraceContext logs a message at Trace level with the provided context.
func (l Logger) TraceContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelTrace, msg, callerPC(1), attrs...)
}

// Trace logs a message at Trace level.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelTrace, msg, callerPC(1), attrs...)
}

// DebugContext logs a message at Debug level with the provided context.
func (l Logger) DebugContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelDebug, msg, callerPC(1), attrs...)
}

// Debug logs a message at Debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelDebug, msg, callerPC(1), attrs...)
}

// InfoContext logs a message at Info level with the provided context.
func (l Logger) InfoContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelInfo, msg, callerPC(1), attrs...)
}

// Info logs a message at Info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelInfo, msg, callerPC(1), attrs...)
}

// WarnContext logs a message at Warn level with the provided context.
func (l Logger) WarnContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelWarn, msg, callerPC(1), attrs...)
}

// Warn logs a message at Warn level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelWarn, msg, callerPC(1), attrs...)
}

// ErrorContext logs a message at Error level with the provided context.
func (l Logger) ErrorContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelError, msg, callerPC(1), attrs...)
}

// Error logs a message at Error level.
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelError, msg, callerPC(1), attrs...)
}

// LogContext logs a message at an arbitrary level with the provided context.
func (l Logger) LogContext(
	ctx context.Context,
	level Level,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, level, msg, callerPC(1), attrs...)
}

// logContext writes a log message at the specified level with the provided
// context. The pc identifies the call site, from which the record's target
// is derived when none is given explicitly.
func (l Logger) logContext(
	ctx context.Context,
	level Level,
	msg string,
	pc uintptr,
	attrs ...slog.Attr,
) {
	// Silently return for zero value loggers
	if l.Logger == nil {
		return
	}

	// The gate is checked first so disabled levels cost a single atomic load.
	if l.gate != nil && slog.Level(level) < l.gate.Level() {
		return
	}

	// A target attribute outranks the handler and context targets, which are
	// all Enabled can see, so only the threshold is checked here.
	if l.sink != nil && slices.ContainsFunc(attrs, isTargetAttr) {
		if !l.sink.filter.LevelEnabled(level) {
			return
		}
	} else if !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pc)
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}

func isTargetAttr(a slog.Attr) bool { return a.Key == TargetKey }
