//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ardnew/smlog/log"
	"github.com/ardnew/smlog/profile"
)

// pprofConfig selects a profile recorded for the lifetime of one command.
type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Record a profile of the command (${pprofModeEnum})." placeholder:"MODE" short:"p"`
	Dir  string `default:"${pprofDir}" help:"Directory receiving profile files." type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(cacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: profile.Tag, Title: "Profiling options"}
}

// start begins recording the selected profile. The returned function ends
// the recording and logs how long it ran. Without a mode both are no-ops.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	logger := log.For(profile.Tag)
	began := time.Now()

	profiler := profile.Profiler{Mode: f.Mode, Path: f.Dir, Quiet: true}.Start()

	logger.DebugContext(ctx, "profiling "+f.Mode+" into "+f.Dir,
		slog.String("mode", f.Mode),
		slog.String("dir", f.Dir),
	)

	return func() {
		profiler.Stop()

		logger.DebugContext(ctx, "profile "+f.Mode+" written",
			slog.String("mode", f.Mode),
			slog.Duration("elapsed", time.Since(began)),
		)
	}
}
