// Package main provides the vix binary, a minimal vi-like file viewer.
//
// Usage:
//
//	vix <file>
//
// vix opens the file, renders its first line in a raw-mode viewport, and
// accepts h/j/k/l navigation plus :q to quit. Called without a file path it
// exits silently with a non-zero status. Setting VIX_DEBUG to a file path
// enables debug logging to that file; it changes no other behavior.
package main

import (
	"fmt"
	"os"

	vix "github.com/grindlemire/go-vix"
	"github.com/grindlemire/go-vix/internal/debug"
)

func main() {
	if len(os.Args) != 2 {
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "vix:", err)
		os.Exit(1)
	}
}

func run(path string) error {
	if logPath := os.Getenv("VIX_DEBUG"); logPath != "" {
		if err := debug.Init(logPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	session, err := vix.NewSession(path)
	if err != nil {
		return err
	}
	return session.Run()
}
