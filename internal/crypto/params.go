package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
)

// Default byte lengths for generated parameters.
const (
	// DefaultIVLength is the AES-CBC initialization vector size (one block).
	DefaultIVLength = 16

	// DefaultSaltLength is the PBKDF2 salt size.
	DefaultSaltLength = 32

	// DefaultKeyLength is the root secret key size (256 bits).
	DefaultKeyLength = 32
)

// GenerateIV returns a base64-encoded random initialization vector of the
// given byte length.
func GenerateIV(length int) (string, error) {
	return generateRandom(length, "iv")
}

// GenerateSalt returns a base64-encoded random salt of the given byte length.
func GenerateSalt(length int) (string, error) {
	return generateRandom(length, "salt")
}

// GenerateKey returns a base64-encoded random key of the given byte length.
// Used by the key manager to mint root secrets.
func GenerateKey(length int) (string, error) {
	return generateRandom(length, "key")
}

// generateRandom draws length bytes from the platform's secure random source.
// The length is validated before any randomness is consumed.
func generateRandom(length int, what string) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: %s length must be positive, got %d", eserrors.ErrInvalidParameter, what, length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %s: %v", eserrors.ErrGenerationFailure, what, err)
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}
