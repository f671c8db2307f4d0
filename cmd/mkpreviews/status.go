package main

import (
	"os"

	"golang.org/x/term"
)

// --- ANSI color helpers (disabled when NO_COLOR is set or stdout is not a terminal) ---

var noColor = os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))

func ansi(code, s string) string {
	if noColor {
		return s
	}
	return code + s + "\033[0m"
}

func bold(s string) string  { return ansi("\033[1m", s) }
func dim(s string) string   { return ansi("\033[2m", s) }
func green(s string) string { return ansi("\033[32m", s) }
