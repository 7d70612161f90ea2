package cli

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"log": map[string]any{
			"level":  "debug",
			"ignore": []any{"db", "net::http"},
			"match":  nil,
		},
		"pprof": map[string]any{
			"mode": "cpu",
		},
		"count": 3,
		"quiet": true,
	}

	got := flatten("", doc)
	want := map[string]any{
		"log-level":  "debug",
		"log-ignore": "db,net::http",
		"pprof-mode": "cpu",
		"count":      "3",
		"quiet":      "true",
	}

	if !maps.Equal(got, want) {
		t.Errorf("flatten() = %v, want %v", got, want)
	}
}

func TestResolveYAMLEmpty(t *testing.T) {
	t.Parallel()

	r, err := resolveYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("resolveYAML(empty) error = %v", err)
	}

	if c, ok := r.(config); !ok || len(c) != 0 {
		t.Errorf("resolveYAML(empty) = %v, want empty config", r)
	}
}

func TestResolveYAMLInvalid(t *testing.T) {
	t.Parallel()

	_, err := resolveYAML(strings.NewReader("log: [unterminated"))
	if err == nil {
		t.Error("resolveYAML(invalid) error = nil")
	}
}

func TestResolveYAMLFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		yaml   string
		args   []string
		level  string
		ignore []string
	}{
		{
			name:   "nested_keys",
			yaml:   "log:\n  level: debug\n  ignore:\n    - db\n    - net::http\n",
			level:  "debug",
			ignore: []string{"db", "net::http"},
		},
		{
			name:   "flat_underscore_keys",
			yaml:   "log_level: error\nlog_ignore: cache\n",
			level:  "error",
			ignore: []string{"cache"},
		},
		{
			name:   "flags_override",
			yaml:   "log:\n  level: debug\n",
			args:   []string{"--log-level=warning"},
			level:  "warning",
			ignore: nil,
		},
		{
			name:  "defaults_kept",
			yaml:  "other: value\n",
			level: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := resolveYAML(strings.NewReader(tt.yaml))
			if err != nil {
				t.Fatalf("resolveYAML() error = %v", err)
			}

			var cli struct {
				Log struct {
					Level  string   `default:"info"`
					Ignore []string `sep:","`
				} `embed:"" prefix:"log-"`
			}

			parser, err := kong.New(&cli, kong.Resolvers(r))
			if err != nil {
				t.Fatal(err)
			}

			_, err = parser.Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if cli.Log.Level != tt.level {
				t.Errorf("log-level = %q, want %q", cli.Log.Level, tt.level)
			}

			if !slices.Equal(cli.Log.Ignore, tt.ignore) {
				t.Errorf("log-ignore = %q, want %q", cli.Log.Ignore, tt.ignore)
			}
		})
	}
}
