package log

import (
	"context"
	"runtime"
	"strings"
)

// TargetKey is the attribute key naming the module a record originates from.
//
// A string attribute with this key, attached to a record or bound with
// [slog.Logger.With], overrides the target derived from the call site.
const TargetKey = "target"

type targetKey struct{}

// WithTarget returns a new context.Context carrying target.
// Records logged with the returned context and no other explicit target are
// attributed to it.
func WithTarget(ctx context.Context, target string) context.Context {
	return context.WithValue(ctx, targetKey{}, target)
}

// TargetFrom returns the target stored in ctx by [WithTarget].
func TargetFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	target, ok := ctx.Value(targetKey{}).(string)

	return target, ok
}

// callerPC returns the program counter of the function skip frames above the
// caller of callerPC.
func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	// 0=runtime.Callers, 1=callerPC, 2=caller of callerPC
	runtime.Callers(skip+2, pcs[:])

	return pcs[0]
}

// packageOf returns the import path of the package containing pc.
func packageOf(pc uintptr) string {
	if pc == 0 {
		return ""
	}

	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()

	return packageName(frame.Function)
}

// packageName trims the function and receiver from a fully qualified
// function name, e.g. "example.com/a/b.(*T).M" becomes "example.com/a/b".
func packageName(function string) string {
	slash := strings.LastIndexByte(function, '/') + 1

	dot := strings.IndexByte(function[slash:], '.')
	if dot < 0 {
		return function
	}

	return function[:slash+dot]
}
