package logger

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Caller identifies the source location of a log call.
type Caller struct {
	File     string
	Function string
	Line     int
}

var unknownCaller = Caller{File: "unknown", Function: "unknown"}

// CallerAt returns the call site skip frames above its caller.
// CallerAt(0) describes the function that called CallerAt.
func CallerAt(skip int) Caller {
	var pcs [1]uintptr
	// 0=runtime.Callers, 1=CallerAt
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return unknownCaller
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	if frame.File == "" {
		return unknownCaller
	}
	c := Caller{File: filepath.Base(frame.File), Function: "unknown", Line: frame.Line}
	if frame.Function != "" {
		c.Function = funcName(frame.Function)
	}
	return c
}

// funcName strips the import path and package qualifier from a runtime
// function name: "example.com/app/db.(*Store).Get" becomes "(*Store).Get".
func funcName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.Index(full, "."); i >= 0 && i+1 < len(full) {
		full = full[i+1:]
	}
	return full
}
