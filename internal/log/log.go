// Package log provides context-aware diagnostic logging for gitree.
// Diagnostics go to stderr; findings go through the output package.
package log

import (
	"context"
	"fmt"
	"io"
)

type ctxKey struct{}

// Logger writes diagnostics and, when verbose, per-directory progress.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New creates a new logger.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	fmt.Fprintln(l.out, args...)
}

// Checking logs the directory currently being scanned.
// Only prints when verbose mode is enabled.
func (l *Logger) Checking(path string) {
	if l.verbose {
		fmt.Fprintf(l.out, "Checking %s\n", path)
	}
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
