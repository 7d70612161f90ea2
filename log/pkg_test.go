package log

import (
	"bytes"
	"context"
	"errors"
	"io"
	golog "log"
	"log/slog"
	"os"
	"slices"
	"testing"

	"github.com/ardnew/smlog/pkg"
)

// useDefault replaces the process-wide state with a fresh, uninstalled sink
// writing to w, and restores the original state when the test ends.
func useDefault(t *testing.T, w io.Writer) {
	t.Helper()

	origFilter, origSink, origGate, origLog := defaultFilter, defaultSink, gate, defaultLog
	origInstalled := installed.Load()
	origSlog := slog.Default()

	defaultFilter = NewFilter()
	defaultSink = NewSink(WithFilter(defaultFilter), WithOutput(w))
	gate = newGate(LevelOff)
	defaultLog = Logger{Logger: slog.New(defaultSink), sink: defaultSink, gate: gate}
	installed.Store(false)

	t.Cleanup(func() {
		defaultFilter, defaultSink, gate, defaultLog = origFilter, origSink, origGate, origLog
		installed.Store(origInstalled)

		// slog.SetDefault redirected the standard logger into the sink.
		slog.SetDefault(origSlog)
		golog.SetOutput(os.Stderr)
		golog.SetFlags(golog.LstdFlags)
	})
}

func TestPackage_BeforeInstall_LogsNothing(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)

	Error("too early")
	For("app").Error("too early")

	if buf.Len() > 0 {
		t.Errorf("expected no output before install, got %q", buf.String())
	}
	if Installed() {
		t.Error("expected not installed")
	}
}

func TestPackage_Install_Scenario(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)

	if err := Install(LevelWarn); err != nil {
		t.Fatalf("install failed: %v", err)
	}
	if !Installed() {
		t.Error("expected installed")
	}

	Info("x")
	Warn("low disk")

	if expected := "warning: low disk\n"; buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
	if gate.Level() != slog.LevelWarn {
		t.Errorf("expected gate at warn, got %v", gate.Level())
	}
}

func TestPackage_Install_Twice(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)

	if err := Install(LevelInfo); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	err := Install(LevelDebug)
	if !errors.Is(err, pkg.ErrAlreadyInstalled) {
		t.Fatalf("expected ErrAlreadyInstalled, got %v", err)
	}

	// The threshold is still updated; the gate is not.
	if DefaultFilter().Threshold() != LevelDebug {
		t.Errorf("expected threshold debug, got %v", DefaultFilter().Threshold())
	}
	if gate.Level() != slog.LevelInfo {
		t.Errorf("expected gate at info, got %v", gate.Level())
	}
}

func TestPackage_Init_PanicsWhenInstalled(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)

	Init(LevelInfo)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, pkg.ErrAlreadyInstalled) {
			t.Errorf("expected panic with ErrAlreadyInstalled, got %v", r)
		}
	}()

	Init(LevelInfo)
	t.Error("second Init did not panic")
}

func TestPackage_IgnoreAllow_Scenarios(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)

	Ignore("db")
	Init(LevelTrace)

	For("db::pool").Error("timeout")
	if buf.Len() > 0 {
		t.Errorf("ignored target wrote %q", buf.String())
	}

	SetLevel(LevelInfo)
	Allow("db")
	For("db").Info("ready")

	if expected := "info: ready\n"; buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
	if len(Ignored()) != 0 {
		t.Errorf("expected empty ignore list, got %v", Ignored())
	}
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)
	Init(LevelTrace)

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		label string
	}{
		{"Trace", Trace, "trace"},
		{"Debug", Debug, "debug"},
		{"Info", Info, "info"},
		{"Warn", Warn, "warning"},
		{"Error", Error, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("package message", slog.String("key", "value"))

			if expected := tt.label + ": package message\n"; buf.String() != expected {
				t.Errorf("expected %q, got %q", expected, buf.String())
			}
		})
	}
}

func TestPackage_ContextFunctions_UseDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)
	Init(LevelTrace)

	ctx := WithTarget(DefaultContextProvider(), "ctx::target")

	TraceContext(ctx, "a")
	DebugContext(ctx, "b")
	InfoContext(ctx, "c")
	WarnContext(ctx, "d")
	ErrorContext(ctx, "e")
	LogContext(ctx, LevelInfo, "f")

	Ignore("ctx")
	ErrorContext(ctx, "hidden")

	expected := "trace: a\ndebug: b\ninfo: c\nwarning: d\nerror: e\ninfo: f\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestPackage_SlogDefault_RoutedThroughSink(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)
	Init(LevelInfo)

	slog.Debug("below threshold")
	slog.Warn("from slog", "key", "value")
	slog.Info("targeted", TargetKey, "db")

	Ignore(thisPackage)
	slog.Error("from ignored package")

	expected := "warning: from slog\ninfo: targeted\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestPackage_CallerPackage_IsTarget(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)
	Init(LevelInfo)

	Ignore("github.com/ardnew/smlog")
	Error("hidden")

	if buf.Len() > 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}

	Allow("github.com/ardnew/smlog")
	Error("shown")

	if expected := "error: shown\n"; buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestPackage_SetMatch(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)
	Init(LevelInfo)

	Ignore("foo")
	For("foobar").Info("path")
	SetMatch(MatchRaw)
	For("foobar").Info("raw")

	if expected := "info: path\n"; buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
	if !slices.Equal(Ignored(), []string{"foo"}) {
		t.Errorf("expected [foo], got %v", Ignored())
	}
}

func TestPackage_Flush(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)

	if err := Flush(); err != nil {
		t.Errorf("flush returned %v", err)
	}
	if buf.Len() > 0 {
		t.Errorf("flush wrote %q", buf.String())
	}
}

func TestPackage_RecordTarget_OverridesBoundTarget(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)

	Ignore("db")
	if err := Install(LevelInfo); err != nil {
		t.Fatal(err)
	}

	For("db").Warn("kept", slog.String(TargetKey, "app"))
	InfoContext(WithTarget(context.Background(), "db"), "from context",
		slog.String(TargetKey, "app"))
	For("app").Error("dropped", slog.String(TargetKey, "db"))
	Debug("too verbose", slog.String(TargetKey, "app"))

	if expected := "warning: kept\ninfo: from context\n"; buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
