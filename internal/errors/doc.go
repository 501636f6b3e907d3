// Package errors provides typed error values for the envseal application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Crypto errors: envelope codec failures (ErrIntegrityCheckFailed,
//     ErrDecryptionFailed, ErrInvalidEnvelopeFormat)
//   - Transform errors: document-level preconditions (ErrEmptyDocument)
//   - Store errors: file system issues (ErrNotFound, ErrPermissionDenied)
//   - Project errors: CLI project state (ErrProjectNotInitialized)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(serialized) == 0 {
//	    return "", errors.ErrEmptyCipherText
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Encrypt(ctx, opts)
//	if errors.Is(err, serrors.ErrSecretKeyNotFound) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("decrypting value for %s: %w", key, errors.ErrIntegrityCheckFailed)
//
// The decrypt path deliberately keeps ErrDecryptionFailed ambiguous between a
// wrong secret key and corrupted ciphertext; distinguishing the two would leak
// key-correctness information to an attacker probing the envelope.
package errors
