package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/smlog/log"
)

// Check reports whether records would be emitted for each target.
type Check struct {
	Level Level `default:"info" help:"Severity to check." short:"l"`

	Targets []string `arg:"" help:"Targets to check." name:"target"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	filter := loggerFrom(ctx).Filter()
	out := outputFrom(ctx)

	for _, target := range c.Targets {
		verdict := "reject"
		if filter.Accepts(log.Level(c.Level), target) {
			verdict = "accept"
		}

		_, err := fmt.Fprintf(out, "%s\t%s\n", verdict, target)
		if err != nil {
			return err
		}
	}

	return nil
}
