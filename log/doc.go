// Package log provides a small process-wide logging sink for [log/slog].
//
// Records carry a severity [Level], a target naming the module they come
// from, and a message. A [Filter] decides whether each record is written,
// using a single severity threshold and a set of ignored target prefixes.
// A [Sink] is the [slog.Handler] that consults the filter and writes each
// line of an accepted message as
//
//	<label>: <line>
//
// where label is one of "error", "warning", "info", "debug", or "trace".
// Nothing else is written: no timestamps, no target, no attributes, and no
// color.
//
// # Basic Usage
//
// Install the process-wide sink once at startup, then log from anywhere:
//
//	log.Ignore("example.com/noisy")
//	log.Init(log.LevelWarn)
//
//	log.Warn("low disk") // warning: low disk
//	log.Info("x")        // discarded
//
// [Init] panics if called twice; [Install] returns [pkg.ErrAlreadyInstalled]
// instead. After installation the sink is also the [slog] default handler,
// so [slog.Info] and friends are filtered the same way.
//
// # Targets
//
// A record's target is, in order of preference, a string attribute named
// [TargetKey], a target bound with [Logger.Target] or [For], a target stored
// in the context with [WithTarget], or the import path of the package that
// logged the record.
//
// # Ignoring Targets
//
// [Ignore] silences a target and everything nested below it; [Allow]
// reverses an earlier [Ignore] of the identical string. Both may be called
// at any time from any goroutine and take effect for the very next record.
//
// By default ([MatchPath]) an ignored prefix matches the target itself and
// targets that continue with "::", ".", or "/", so ignoring "db" silences
// "db" and "db::pool" but not "dbx". [MatchRaw] compares plain string
// prefixes instead.
//
// # Independent Loggers
//
// [Make] builds a [Logger] with its own sink and filter, for programs that
// prefer an explicitly owned filter over the process-wide one:
//
//	logger := log.Make(os.Stderr, log.WithLevel(log.LevelDebug))
//	logger.Filter().Ignore("net")
//	logger.Debug("line1\nline2") // debug: line1
//	                             // debug: line2
package log
