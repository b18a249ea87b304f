package main

import (
	"fmt"
	"os"
	"runtime"
)

// Run starts f on its own goroutine with panic recovery, so a bug in one
// fetch reports a stack instead of a bare crash.
func Run(f func()) {
	go func() {
		defer Recover()
		f()
	}()
}

func Recover() {
	if r := recover(); r != nil {
		handlePanic(r)
	}
}

func handlePanic(p any) {
	defer os.Exit(1)

	buf := make([]byte, 100000)
	n := runtime.Stack(buf, false)
	fmt.Fprintf(os.Stderr, "panic: %v\n\n%s\n", p, buf[:n])
}
