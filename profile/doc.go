// Package profile provides optional runtime profiling for smlog.
//
// This package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (default), [Modes] is empty and
// [Profiler.Start] returns a no-op.
//
//	go build -tags pprof .
//
// # Usage
//
//	p := profile.Profiler{
//	    Mode: "cpu",
//	    Path: "/tmp/profiles",
//	}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode, e.g.
// cpu.pprof or mem.pprof, and can be inspected with:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
// When built with the tag, the package also imports [net/http/pprof], which
// registers its handlers on [net/http.DefaultServeMux].
package profile
