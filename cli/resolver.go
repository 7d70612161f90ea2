package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] that reads YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolveYAML, "/path/to/config.yaml")
//
// Nested mappings are flattened by joining keys with hyphens, so
//
//	log:
//	  level: debug
//	  ignore: [db, net::http]
//
// applies to the flags
//
//	--log-level=debug
//	--log-ignore=db,net::http
//
// Keys may also use underscores in place of hyphens. Command-line flags
// override config file values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file - return empty config
			return config{}, nil
		}

		return nil, err
	}

	return config(flatten("", doc)), nil
}

// config implements [kong.Resolver] for flattened YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but config keys may use
	// underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flatten converts a nested YAML mapping into a flat map keyed by
// hyphen-joined paths. Scalars become strings, and sequences become
// comma-separated strings, which is how Kong parses flag values.
func flatten(prefix string, node map[string]any) map[string]any {
	result := make(map[string]any)

	for key, val := range node {
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch v := val.(type) {
		case map[string]any:
			maps.Copy(result, flatten(key, v))

		case []any:
			items := make([]string, len(v))
			for i, item := range v {
				items[i] = fmt.Sprint(item)
			}

			result[key] = strings.Join(items, ",")

		case nil:
			// Null values leave the flag at its default

		default:
			result[key] = fmt.Sprint(v)
		}
	}

	return result
}
