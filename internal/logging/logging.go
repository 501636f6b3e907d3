package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Reporter records informational, warning, and error events from core
// operations. Reporting is fire-and-forget: implementations must never fail
// the calling operation.
type Reporter interface {
	Infof(msg string, args ...any)
	Warnf(msg string, args ...any)
	Errorf(msg string, args ...any)
}

// Logger is the CLI's Reporter implementation. Info and debug output are
// gated behind the --verbose and --debug flags; warnings and errors always
// print to stderr.
type Logger struct {
	Verbose bool
	Debug   bool
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.RedString("[error] ")+msg+"\n", args...)
}

// ErrorfAndReturn logs the formatted message as an error and returns it as an
// error value, so commands can report and propagate in one step.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	l.Errorf(msg, args...)
	return fmt.Errorf(msg, args...)
}

// Discard is a Reporter that drops all events. Useful in tests and for
// callers that want the core without any output.
type Discard struct{}

func (Discard) Infof(msg string, args ...any)  {}
func (Discard) Warnf(msg string, args ...any)  {}
func (Discard) Errorf(msg string, args ...any) {}
