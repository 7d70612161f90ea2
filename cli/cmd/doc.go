// Package cmd provides the smlog subcommands: emit, check, show, init, and
// version.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"

	// TargetIdentifier is the kong variable identifier containing the default
	// target of emitted records.
	TargetIdentifier = "target"
)
