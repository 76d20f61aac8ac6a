// Package debug provides build-flag-gated diagnostic logging. Nothing
// here writes to stdout; the report formatter owns stdout.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Build flag for debug mode - can be overridden at build time
// go build -ldflags "-X github.com/standardbeagle/cppeffects/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// debugOutput is the writer for debug output (defaults to stderr when
// the build flag is set)
var debugOutput io.Writer

// debugMutex protects access to debug output
var debugMutex sync.Mutex

// SetDebugOutput sets a custom writer for debug output.
// Pass nil to fall back to the build-flag default.
func SetDebugOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	debugOutput = w
}

// IsDebugEnabled returns true if debug output is active
func IsDebugEnabled() bool {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	return debugOutput != nil || EnableDebug == "true"
}

func getDebugWriter() io.Writer {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	if debugOutput != nil {
		return debugOutput
	}
	if EnableDebug == "true" {
		return os.Stderr
	}
	return nil
}

// Logf prints a debug line only when debug mode is enabled
func Logf(format string, args ...interface{}) {
	w := getDebugWriter()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG] "+format+"\n", args...)
}

// Log provides structured debug logging with component names
func Log(component, format string, args ...interface{}) {
	w := getDebugWriter()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG:%s] "+format+"\n", append([]interface{}{component}, args...)...)
}
