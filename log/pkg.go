package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/ardnew/smlog/pkg"
)

// DefaultContextProvider returns the default context used by context-unaware
// logging functions.
var DefaultContextProvider = context.TODO

var (
	// defaultFilter is the process-wide filter shared by every call site.
	defaultFilter = NewFilter()
	// defaultSink is the process-wide sink registered by [Install].
	defaultSink = NewSink(WithFilter(defaultFilter), WithOutput(os.Stdout))
	// gate skips disabled levels before a record is built. It stays at
	// [LevelOff] until [Install] succeeds.
	gate = newGate(LevelOff)
	// defaultLog is the logger behind the package-level logging functions.
	defaultLog = Logger{Logger: slog.New(defaultSink), sink: defaultSink, gate: gate}
	// installed records whether defaultSink has been registered.
	installed atomic.Bool
)

func newGate(level Level) *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slog.Level(level))

	return v
}

// Install sets the process-wide threshold to level, then registers the
// process-wide [Sink] as the [slog] default handler and opens the facade
// gate to level.
//
// Registration succeeds at most once per process. Later calls still update
// the threshold but return [pkg.ErrAlreadyInstalled]. There is no way to
// uninstall the sink.
func Install(level Level) error {
	defaultFilter.SetThreshold(level)

	if !installed.CompareAndSwap(false, true) {
		return pkg.ErrAlreadyInstalled.Wrapf("level %s", level)
	}

	slog.SetDefault(defaultLog.Logger)
	gate.Set(slog.Level(level))

	return nil
}

// Init is like [Install] but panics if the sink is already installed.
// Installing twice is a programming error.
func Init(level Level) {
	if err := Install(level); err != nil {
		panic(err)
	}
}

// Installed reports whether [Install] has registered the process-wide sink.
func Installed() bool { return installed.Load() }

// SetLevel changes the process-wide threshold, and the facade gate if the
// sink is installed.
func SetLevel(level Level) {
	defaultFilter.SetThreshold(level)

	if installed.Load() {
		gate.Set(slog.Level(level))
	}
}

// Ignore silences each target, and every target nested below it, in the
// process-wide filter. It may be called at any time, before or after
// [Install].
func Ignore(targets ...string) { defaultFilter.Ignore(targets...) }

// Allow reverses a prior [Ignore] of each exact target in the process-wide
// filter.
func Allow(targets ...string) { defaultFilter.Allow(targets...) }

// Ignored returns the sorted ignored prefixes of the process-wide filter.
func Ignored() []string { return defaultFilter.Ignored() }

// SetMatch changes how the process-wide filter compares ignored prefixes.
func SetMatch(m Match) { defaultFilter.SetMatch(m) }

// Default returns the process-wide [Logger].
func Default() Logger { return defaultLog }

// DefaultFilter returns the process-wide [Filter].
func DefaultFilter() *Filter { return defaultFilter }

// For returns the process-wide [Logger] bound to target.
func For(target string) Logger { return defaultLog.Target(target) }

// Flush does nothing; the process-wide sink never buffers.
func Flush() error { return defaultSink.Flush() }

// TraceContext logs a message at Trace level using the default logger with
// the provided context.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.logContext(ctx, LevelTrace, msg, callerPC(1), attrs...)
}

// Trace logs a message at Trace level using the default logger.
func Trace(msg string, attrs ...slog.Attr) {
	defaultLog.logContext(DefaultContextProvider(), LevelTrace, msg, callerPC(1), attrs...)
}

// DebugContext logs a message at Debug level using the default logger with the
// provided context.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.logContext(ctx, LevelDebug, msg, callerPC(1), attrs...)
}

// Debug logs a message at Debug level using the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	defaultLog.logContext(DefaultContextProvider(), LevelDebug, msg, callerPC(1), attrs...)
}

// InfoContext logs a message at Info level using the default logger with the
// provided context.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.logContext(ctx, LevelInfo, msg, callerPC(1), attrs...)
}

// Info logs a message at Info level using the default logger.
func Info(msg string, attrs ...slog.Attr) {
	defaultLog.logContext(DefaultContextProvider(), LevelInfo, msg, callerPC(1), attrs...)
}

// WarnContext logs a message at Warn level using the default logger with the
// provided context.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.logContext(ctx, LevelWarn, msg, callerPC(1), attrs...)
}

// Warn logs a message at Warn level using the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	defaultLog.logContext(DefaultContextProvider(), LevelWarn, msg, callerPC(1), attrs...)
}

// ErrorContext logs a message at Error level using the default logger with the
// provided context.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.logContext(ctx, LevelError, msg, callerPC(1), attrs...)
}

// Error logs a message at Error level using the default logger.
func Error(msg string, attrs ...slog.Attr) {
	defaultLog.logContext(DefaultContextProvider(), LevelError, msg, callerPC(1), attrs...)
}

// LogContext logs a message at an arbitrary level using the default logger
// with the provided context.
func LogContext(ctx context.Context, level Level, msg string, attrs ...slog.Attr) {
	defaultLog.logContext(ctx, level, msg, callerPC(1), attrs...)
}
