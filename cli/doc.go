// Package cli contains the command line interface for smlog.
//
// # Usage
//
// Each command installs the process-wide sink from the logging options
// before it runs:
//
//	smlog --log-level=debug --log-ignore=db emit -t db::pool "suppressed"
//	smlog --log-level=warning check -l info app app::net
//
// # Commands
//
//   - emit: log a message (or stdin) through the installed sink
//   - check: print accept or reject for each target
//   - show: render the effective threshold, match mode and ignore list
//   - init: write the current option values to the YAML config file
//   - version: print the version
//
// # Logging Options
//
//   - --log-level: most verbose severity emitted (trace, debug, info,
//     warning, error, off). Env SMLOG_LEVEL.
//   - --log-ignore: silence a target and all targets nested below it.
//     Repeatable or comma separated. Env SMLOG_IGNORE.
//   - --log-match: path (separator aware, default) or raw (string prefix)
//
// # Configuration Files
//
// Option defaults are read from config.yaml and config.json in the user
// configuration directory (e.g. ~/.config/smlog). Nested YAML keys are joined
// with hyphens to form flag names:
//
//	log:
//	  level: debug
//	  ignore:
//	    - db
//	    - net::http
//
// Command-line flags and environment variables override config file values.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o smlog .
//
//   - --pprof-mode: enable profiling (see --help for the supported modes)
//   - --pprof-dir: profile output directory (default: ~/.cache/smlog/pprof)
package cli
