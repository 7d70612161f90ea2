package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/smlog/pkg"
)

// Version prints the program version.
type Version struct{}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	_, err := fmt.Fprintf(outputFrom(ctx), "%s %s\n", pkg.Name, pkg.Version())

	return err
}
