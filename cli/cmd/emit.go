package cmd

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/smlog/log"
)

// Emit sends messages through the installed sink.
type Emit struct {
	Level  Level  `default:"info"        help:"Severity of emitted records." short:"l"`
	Target string `default:"${target}"   help:"Target of emitted records."   short:"t"`
	Lines  bool   `help:"With stdin input, emit one record per line instead of one record per input." short:"L"`

	Message []string `arg:"" help:"Message words, joined by spaces. Reads stdin if empty or '-'." optional:""`
}

// Run executes the emit command.
func (e *Emit) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger := loggerFrom(ctx).Target(e.Target)

	if len(e.Message) > 0 && !(len(e.Message) == 1 && e.Message[0] == "-") {
		logger.LogContext(ctx, log.Level(e.Level), strings.Join(e.Message, " "))

		return nil
	}

	in := inputFrom(ctx)

	if !e.Lines {
		data, err := io.ReadAll(in)
		if err != nil {
			return e.readError(err)
		}

		if len(data) > 0 {
			logger.LogContext(ctx, log.Level(e.Level), string(data))
		}

		return nil
	}

	// bufio.Reader has no line length limit, unlike bufio.Scanner.
	r := bufio.NewReader(in)

	for {
		line, err := r.ReadString('\n')

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if line != "" {
			logger.LogContext(ctx, log.Level(e.Level), line)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return e.readError(err)
		}
	}
}

func (e *Emit) readError(err error) error {
	return ErrReadInput.
		With(slog.String("target", e.Target)).
		Wrap(err)
}
