// Package logger provides the Reporter interface and the CLI logger for
// envseal commands.
//
// Core packages (secrets, workflows) accept a Reporter instance explicitly
// rather than reaching for a process-wide singleton. This keeps components
// testable and avoids hidden mutable state: tests pass logger.Discard{},
// commands pass a Logger configured from their flags.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only warnings and errors are shown.
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Encrypted %d values", count)
//
// Commands typically create a logger in their PersistentPreRun and pass it
// to workflow functions as a Reporter.
package logger
