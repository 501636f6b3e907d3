// Package workflows contains the business logic behind envseal commands.
//
// Each workflow takes an Options struct, a ConfigStore, and a Reporter, and
// returns a Result struct describing what happened. The cmd layer stays
// thin: it parses flags, calls a workflow, and renders the result with
// spinners and formatted output.
//
// Workflows return the sentinel errors from internal/errors so commands can
// branch on conditions like ErrProjectNotInitialized or
// ErrSecretKeyNotFound with errors.Is and show targeted guidance.
//
// Workflows are synchronous and do not retry. The document store is shared
// mutable state: concurrent encrypt-and-store runs against the same
// document race, and excluding that is the caller's job (single-writer
// discipline or external file locking).
package workflows
