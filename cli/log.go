package cli

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/smlog/cli/cmd"
	"github.com/ardnew/smlog/log"
	"github.com/ardnew/smlog/pkg"
)

type logConfig struct {
	Level  cmd.Level `default:"info" env:"SMLOG_LEVEL"  help:"Most verbose severity emitted (${levelEnum})."`
	Ignore []string  `env:"SMLOG_IGNORE" help:"Silence a target and everything nested below it." placeholder:"TARGET" sep:","`
	Match  log.Match `default:"path" enum:"path,raw" help:"How ignored targets match: path (separator aware) or raw (string prefix)."`
}

func joinLevels() string {
	return strings.Join(slices.Collect(log.Levels()), ", ")
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"levelEnum": joinLevels(),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// start configures the process-wide filter and installs the sink.
// Starting again replaces the filter configuration of the previous start.
// The returned function flushes the sink.
func (f *logConfig) start(ctx context.Context) (stop func(), err error) {
	log.DefaultFilter().Reset()
	log.SetMatch(f.Match)
	log.Ignore(f.Ignore...)

	err = log.Install(log.Level(f.Level))
	if errors.Is(err, pkg.ErrAlreadyInstalled) {
		log.SetLevel(log.Level(f.Level))
	} else if err != nil {
		return func() {}, err
	}

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", f.Level.String()),
		slog.String("match", f.Match.String()),
		slog.Any("ignore", f.Ignore),
	)

	return func() { _ = log.Flush() }, nil
}
