package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/smlog/cli"
	"github.com/ardnew/smlog/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		logger := log.Default()
		if !log.Installed() {
			// Failed before the sink was installed
			logger = log.Make(os.Stderr, log.WithLevel(log.LevelError))
		}

		logger.Error(
			"run failed: "+err.Error(),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
