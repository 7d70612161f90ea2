package log

import (
	"slices"
	"strconv"
	"sync"
	"testing"
)

func TestFilter_NewFilter_DefaultsToOff(t *testing.T) {
	f := NewFilter()

	if f.Threshold() != LevelOff {
		t.Errorf("expected threshold off, got %v", f.Threshold())
	}
	if f.Match() != MatchPath {
		t.Errorf("expected path match, got %v", f.Match())
	}
	for _, level := range named {
		if f.Accepts(level, "any") {
			t.Errorf("off threshold accepted %v", level)
		}
	}
}

func TestFilter_Accepts_Threshold(t *testing.T) {
	levels := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

	for _, threshold := range levels {
		for _, level := range levels {
			t.Run(threshold.String()+"/"+level.String(), func(t *testing.T) {
				f := NewFilter(WithLevel(threshold))

				want := level >= threshold
				if got := f.Accepts(level, "app"); got != want {
					t.Errorf("Accepts(%v) at %v = %v, want %v", level, threshold, got, want)
				}
			})
		}
	}
}

func TestFilter_Ignore_SilencesNestedTargets(t *testing.T) {
	f := NewFilter(WithLevel(LevelTrace))
	f.Ignore("foo")

	tests := []struct {
		target string
		want   bool
	}{
		{"foo", false},
		{"foo::bar", false},
		{"foo.bar", false},
		{"foo/bar", false},
		{"foobar", true},
		{"bar", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			if got := f.Accepts(LevelError, tt.target); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestFilter_Ignore_RawMatchSilencesSiblings(t *testing.T) {
	f := NewFilter(WithLevel(LevelTrace), WithMatch(MatchRaw), WithIgnore("foo"))

	if f.Accepts(LevelError, "foobar") {
		t.Error("raw match accepted foobar after ignoring foo")
	}
	if !f.Accepts(LevelError, "fo") {
		t.Error("raw match rejected fo after ignoring foo")
	}
}

func TestFilter_Allow_RoundTrip(t *testing.T) {
	targets := []string{"zeta", "alpha", "mid::sub", "beta", "alpha::x"}
	probes := []string{"zeta", "alpha", "alpha::x", "mid", "mid::sub", "beta::y", "omega"}

	f := NewFilter(WithLevel(LevelInfo))

	before := make([]bool, len(probes))
	for i, p := range probes {
		before[i] = f.Accepts(LevelInfo, p)
	}

	// Inserted in non-alphabetical order and removed in yet another order.
	f.Ignore(targets...)
	for _, target := range []string{"beta", "zeta", "alpha::x", "mid::sub", "alpha"} {
		f.Allow(target)
	}

	for i, p := range probes {
		if got := f.Accepts(LevelInfo, p); got != before[i] {
			t.Errorf("Accepts(%q) = %v after round trip, want %v", p, got, before[i])
		}
	}

	if ignored := f.Ignored(); len(ignored) != 0 {
		t.Errorf("expected empty ignore set, got %v", ignored)
	}
}

func TestFilter_Allow_OnlyExactString(t *testing.T) {
	f := NewFilter(WithLevel(LevelInfo), WithIgnore("db"))

	f.Allow("db::pool") // nested, not the ignored string
	f.Allow("never")    // never ignored

	if f.Accepts(LevelInfo, "db::pool") {
		t.Error("allowing a nested target re-enabled it")
	}
	if !slices.Equal(f.Ignored(), []string{"db"}) {
		t.Errorf("expected [db], got %v", f.Ignored())
	}
}

func TestFilter_Ignore_Duplicates(t *testing.T) {
	f := NewFilter(WithLevel(LevelInfo))
	f.Ignore("db", "db")
	f.Ignore("db")

	if !slices.Equal(f.Ignored(), []string{"db"}) {
		t.Errorf("expected [db], got %v", f.Ignored())
	}

	f.Allow("db")
	if !f.Accepts(LevelInfo, "db") {
		t.Error("single allow did not undo duplicate ignores")
	}
}

func TestFilter_Ignored_Sorted(t *testing.T) {
	f := NewFilter(WithIgnore("c", "a", "b"))

	if !slices.Equal(f.Ignored(), []string{"a", "b", "c"}) {
		t.Errorf("expected sorted ignore list, got %v", f.Ignored())
	}
}

func TestFilter_Reset(t *testing.T) {
	f := NewFilter(WithLevel(LevelDebug), WithMatch(MatchRaw), WithIgnore("a"))
	f.Reset()

	if f.Threshold() != LevelOff {
		t.Errorf("expected off, got %v", f.Threshold())
	}
	if len(f.Ignored()) != 0 {
		t.Errorf("expected no ignored targets, got %v", f.Ignored())
	}
	if f.Match() != MatchRaw {
		t.Errorf("reset changed match mode to %v", f.Match())
	}
}

func TestFilter_NilSafe(t *testing.T) {
	var f *Filter

	if f.Accepts(LevelError, "x") || f.LevelEnabled(LevelError) {
		t.Error("nil filter accepted a record")
	}
	if f.Threshold() != LevelOff {
		t.Errorf("expected off, got %v", f.Threshold())
	}
}

func TestFilter_ConcurrentAccess_ThreadSafe(t *testing.T) {
	f := NewFilter(WithLevel(LevelInfo))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		target := "mod" + strconv.Itoa(i)

		wg.Add(3)
		go func() {
			defer wg.Done()
			f.Ignore(target)
			f.Allow(target)
		}()
		go func() {
			defer wg.Done()
			_ = f.Accepts(LevelWarn, target+"::sub")
		}()
		go func() {
			defer wg.Done()
			f.SetThreshold(LevelDebug)
		}()
	}
	wg.Wait()

	if len(f.Ignored()) != 0 {
		t.Errorf("expected empty ignore set, got %v", f.Ignored())
	}
	if f.Threshold() != LevelDebug {
		t.Errorf("expected debug, got %v", f.Threshold())
	}
}

func BenchmarkFilter_Accepts(b *testing.B) {
	f := NewFilter(WithLevel(LevelInfo))
	for i := 0; i < 16; i++ {
		f.Ignore("mod" + strconv.Itoa(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Accepts(LevelWarn, "app::server::handler")
	}
}
