// Package stacktrace captures compact stack traces for panic reporting.
package stacktrace

import (
	"fmt"
	"runtime"
	"strings"
)

// Capture returns a formatted stack trace, skipping the given number of
// frames and excluding runtime internals. Used by recovery middleware to log
// where a panic originated.
func Capture(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "runtime.") {
			if !more {
				break
			}
			continue
		}

		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}

	return b.String()
}
