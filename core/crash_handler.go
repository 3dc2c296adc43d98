package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

var crashCleanups []func()

// OnCrashCleanup registers a function run before the crash report prints.
// Hosts use this to restore the terminal so the stack trace stays readable
func OnCrashCleanup(fn func()) {
	crashCleanups = append(crashCleanups, fn)
}

// HandleCrash runs the registered cleanups, prints the panic and stack trace
// to stderr, and exits non-zero. Call from a deferred recover
func HandleCrash(r any) {
	if r == nil {
		return
	}

	for _, fn := range crashCleanups {
		fn()
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\nCRASH DETECTED: %v\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so a crashed goroutine still cleans up
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
