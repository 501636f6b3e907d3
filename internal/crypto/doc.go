// Package crypto implements the authenticated-encryption envelope used to
// protect configuration values.
//
// # Envelope Scheme
//
// Each value is sealed independently:
//
//  1. A fresh 32-byte salt and 16-byte IV are drawn from crypto/rand
//  2. PBKDF2-SHA256 (100,000 iterations) stretches the root secret plus the
//     salt into a 256-bit AES key
//  3. The plaintext is encrypted with AES-256-CBC and PKCS7 padding
//  4. HMAC-SHA256 binds salt, IV, and ciphertext to the derived key
//
// The result is a four-field envelope serialized as compact JSON:
//
//	{"salt":"...","iv":"...","cipherText":"...","mac":"..."}
//
// Salt, IV, and ciphertext are base64; the MAC tag is hex.
//
// # Encoding Quirk
//
// Both the KDF salt input and the MAC message are the base64-encoded field
// strings, not their decoded bytes, and the MAC key is the base64 encoding
// of the derived key. Hashing raw bytes would be the more conventional
// construction, but existing encrypted data uses the encoded forms, so the
// codec preserves them. Changing this silently breaks every stored envelope.
//
// # Decryption Order
//
// Decrypt verifies the MAC before any cipher work. A tampered envelope or a
// wrong secret key fails with ErrIntegrityCheckFailed without the ciphertext
// ever reaching the block cipher, which keeps the CBC padding check from
// acting as a decryption oracle. Cipher-level failures after a valid MAC
// surface as ErrDecryptionFailed with a message that does not distinguish
// wrong-key from corruption.
//
// # Salt Reuse
//
// A salt must never be reused across two plaintexts under the same secret.
// This is enforced structurally: Encrypt draws a fresh salt on every call
// and there is no API that accepts a caller-provided salt.
package crypto
