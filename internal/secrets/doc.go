// Package secrets provides the document transform and root key management
// for envseal.
//
// # Document Transform
//
// Environment documents (.env.dev, .env.prod, ...) are transformed line by
// line. Each key=value pair has its value sealed into a crypto envelope from
// the crypto package; the line becomes key=<envelope JSON>. Blank lines,
// comments, and bare keys (KEY=) pass through verbatim, so document
// structure survives the round trip. Lines without an '=' separator are
// dropped and reported as a single aggregated diagnostic — a stray line
// never aborts the whole document.
//
// Decryption is the mirror image: DecryptDocument resolves every value back
// to plaintext, and DecryptValue resolves a single value for callers reading
// one key at a time.
//
// # Root Secrets
//
// Each environment has a root secret named SECRET_KEY_<ENV> stored as a
// plain pair in the base .env file. GenerateAndStore mints a fresh 256-bit
// secret and upserts it there; LookupSecretKey reads it back. The base .env
// is excluded from document resolution so it can never be encrypted with a
// key stored inside itself.
//
// # Concurrency
//
// All operations are synchronous. The document store is shared mutable
// state external to this package: callers must serialize read-modify-write
// sequences themselves (single-writer discipline or external locking).
package secrets
