// Package audit provides audit trail logging for envseal operations.
//
// Every significant operation (encrypt, decrypt, keygen, init) is recorded
// in a project-level audit log. This helps teams understand when secrets
// were sealed or resolved and by whom.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	.envseal/audit.jsonl
//
// Each entry contains a UTC timestamp, the acting user's UUID, the
// operation name, and operation-specific details (environment, files,
// value counts).
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error. Operations should never
// fail just because audit logging failed.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit
