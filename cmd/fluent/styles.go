package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// symbols mark file results in check output.
type symbols struct {
	ok, fail, warn string
}

var (
	unicodeSymbols = symbols{ok: "✓", fail: "✗", warn: "!"}
	plainSymbols   = symbols{ok: "ok", fail: "FAIL", warn: "warn"}
)

// symbolsFor picks unicode symbols for terminals and plain words for pipes
// and files.
func symbolsFor(w io.Writer) symbols {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return unicodeSymbols
	}
	return plainSymbols
}
