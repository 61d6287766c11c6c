// Package lemonio holds the output side of lemon: writers, color detection,
// ANSI styling and the leveled logger used for warnings and errors.
package lemonio

import (
	stdio "io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// IOManager centralizes output writers and terminal capabilities.
type IOManager struct {
	out stdio.Writer
	err stdio.Writer

	forceColor         bool
	noColor            bool
	forceColorLevel    int
	hasForceColorLevel bool
}

// New returns a manager bound to process stdout and stderr.
func New() *IOManager {
	return &IOManager{out: os.Stdout, err: os.Stderr}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// ForceColorLevel forces a specific color level (0=none, 1=16, 2=256, 3=truecolor).
func (m *IOManager) ForceColorLevel(level int) *IOManager {
	m.forceColorLevel = level
	m.hasForceColorLevel = true
	return m
}

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the output writer is a terminal. Writers that are
// not files never are.
func (m *IOManager) IsTTY() bool {
	f, ok := m.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width, falling back to $COLUMNS and then 80.
func (m *IOManager) Width() int {
	if f, ok := m.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if w := envInt("COLUMNS"); w > 0 {
		return w
	}
	return 80
}

// SupportsColor reports whether ANSI sequences should be emitted.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// ColorLevel returns 0 for none, 1 for basic, 2 for 256 colors, and 3 for truecolor.
func (m *IOManager) ColorLevel() int {
	if m.hasForceColorLevel {
		return m.forceColorLevel
	}
	if !m.SupportsColor() {
		return 0
	}
	if ct := os.Getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return 3
	}
	t := os.Getenv("TERM")
	if strings.Contains(t, "truecolor") || strings.Contains(t, "24bit") {
		return 3
	}
	if tp := os.Getenv("TERM_PROGRAM"); tp == "vscode" || tp == "zed" {
		return 3
	}
	if strings.Contains(t, "256color") {
		return 2
	}
	return 1
}

func envInt(name string) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
