package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// resetHook restores the terminal to a sane state before a crash report is
// printed. Set once at startup, before any goroutines launch.
var resetHook func()

// SetResetHook registers the terminal restore function used by HandleCrash.
func SetResetHook(fn func()) {
	resetHook = fn
}

// HandleCrash is the unified panic handler. Occupancy invariant violations
// panic rather than limp on with corrupted state; this makes sure the
// report is readable after the screen is torn down.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if resetHook != nil {
		resetHook()
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
