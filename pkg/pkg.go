//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// version is the semantic version of the smlog module embedded at build time.
//
//go:embed VERSION
var version string

// Version returns the embedded module version.
// It is printed by the CLI when users invoke the version subcommand.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "smlog"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Small filtering log sink"
	// EnvPrefix is prepended to environment variable names recognized by the
	// command-line interface.
	EnvPrefix = "SMLOG_"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
