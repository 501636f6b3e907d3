package errors

import "errors"

// Crypto errors indicate failures in the envelope codec or parameter generation.
var (
	// ErrInvalidParameter indicates a caller passed a bad argument, such as a
	// non-positive byte length for salt or IV generation.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrGenerationFailure indicates the platform's secure random source failed.
	ErrGenerationFailure = errors.New("failed to generate secure random bytes")

	// ErrEncryptionFailure indicates the cipher layer failed during encryption.
	ErrEncryptionFailure = errors.New("encryption failed")

	// ErrEmptyCipherText indicates decryption was asked to process empty input.
	ErrEmptyCipherText = errors.New("cipher text is empty")

	// ErrInvalidEnvelopeFormat indicates a serialized envelope could not be
	// parsed or is missing one of its required fields.
	ErrInvalidEnvelopeFormat = errors.New("invalid envelope format")

	// ErrIntegrityCheckFailed indicates the envelope MAC did not verify.
	// The envelope was tampered with or a different secret key was used.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrDecryptionFailed indicates the cipher layer rejected the ciphertext.
	// Wrong key and corrupted data are deliberately indistinguishable here.
	ErrDecryptionFailed = errors.New("decryption failed: invalid key or corrupted cipher text")
)

// Transform and key-manager errors.
var (
	// ErrEmptyDocument indicates every line of the input document was blank.
	ErrEmptyDocument = errors.New("document contains no content")

	// ErrKeyGenerationFailed indicates the key manager could not produce a root secret.
	ErrKeyGenerationFailed = errors.New("failed to generate secret key")
)

// Store errors indicate issues reading or writing configuration documents.
var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates the store lacks permission for the operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDiskError indicates a write failed for reasons other than permissions.
	ErrDiskError = errors.New("disk write failed")
)

// Project state errors indicate issues with CLI project configuration.
var (
	// ErrProjectNotInitialized indicates the project has not been set up with envseal.
	ErrProjectNotInitialized = errors.New("project has not been initialized")

	// ErrProjectAlreadyInitialized indicates the project has already been set up.
	ErrProjectAlreadyInitialized = errors.New("project has already been initialized")

	// ErrSecretKeyNotFound indicates no root secret exists for the environment.
	ErrSecretKeyNotFound = errors.New("secret key not found for environment")

	// ErrSecretKeyExists indicates a root secret already exists for the environment.
	ErrSecretKeyExists = errors.New("secret key already exists for environment")

	// ErrNoFilesFound indicates no environment files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrKeyNotFound indicates a configuration key is absent from a document.
	ErrKeyNotFound = errors.New("configuration key not found")
)
