// Package applog provides the narrow logging surface shared by the locator
// and the pip runner, so neither depends on a particular host environment.
package applog

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Logger is the minimal logging contract the rest of the tool depends on
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// TermLogger writes leveled messages with styled prefixes to a terminal
type TermLogger struct {
	out io.Writer
}

// NewTermLogger creates a terminal logger writing to out
func NewTermLogger(out io.Writer) *TermLogger {
	if out == nil {
		out = os.Stdout
	}
	return &TermLogger{out: out}
}

// Infof logs an informational message
func (l *TermLogger) Infof(format string, args ...any) {
	fmt.Fprintf(l.out, "%s %s\n", infoStyle.Render("[INFO]"), fmt.Sprintf(format, args...))
}

// Warnf logs a warning message
func (l *TermLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.out, "%s %s\n", warnStyle.Render("[WARNING]"), fmt.Sprintf(format, args...))
}

// Errorf logs an error message
func (l *TermLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.out, "%s %s\n", errorStyle.Render("[ERROR]"), fmt.Sprintf(format, args...))
}
