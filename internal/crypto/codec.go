package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
)

const (
	// KeyIterations is the PBKDF2 iteration count.
	KeyIterations = 100000

	// KeySize is the derived AES key size in bytes (256 bits).
	KeySize = 32
)

// DeriveKey stretches the secret key into an AES-256 key with PBKDF2-SHA256.
// The salt input is the base64 salt string as stored in the envelope, not its
// decoded bytes. This matches the wire format of existing encrypted data and
// must not change.
func DeriveKey(secretKey, salt string) []byte {
	return pbkdf2.Key([]byte(secretKey), []byte(salt), KeyIterations, KeySize, sha256.New)
}

// ComputeMac returns the hex HMAC-SHA256 tag over the colon-joined envelope
// fields "salt:iv:cipherText", keyed by the base64 encoding of the derived
// key. The MAC covers the encoded field strings, again for compatibility
// with the existing envelope format.
func ComputeMac(salt, iv, cipherText string, key []byte) string {
	mac := hmac.New(sha256.New, []byte(base64.StdEncoding.EncodeToString(key)))
	mac.Write([]byte(salt + ":" + iv + ":" + cipherText))
	return hex.EncodeToString(mac.Sum(nil))
}

// Encrypt seals plaintext under a key derived from secretKey and a fresh
// salt. Every call draws a new salt and IV, so encrypting the same plaintext
// twice yields different envelopes. No partial envelope is ever returned.
func Encrypt(plaintext, secretKey string) (*Envelope, error) {
	salt, err := GenerateSalt(DefaultSaltLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", eserrors.ErrEncryptionFailure, err)
	}

	ivB64, err := GenerateIV(DefaultIVLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", eserrors.ErrEncryptionFailure, err)
	}
	iv, err := base64.StdEncoding.DecodeString(ivB64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", eserrors.ErrEncryptionFailure, err)
	}

	key := DeriveKey(secretKey, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", eserrors.ErrEncryptionFailure, err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	cipherText := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(cipherText, padded)
	ctB64 := base64.StdEncoding.EncodeToString(cipherText)

	return &Envelope{
		Salt:       salt,
		IV:         ivB64,
		CipherText: ctB64,
		Mac:        ComputeMac(salt, ivB64, ctB64, key),
	}, nil
}

// Decrypt opens a serialized envelope with the given secret key.
//
// The MAC is verified before any cipher work: a mismatch returns
// ErrIntegrityCheckFailed without touching the ciphertext, so the decrypt
// path cannot be used as a padding oracle. A wrong secret key fails here
// too, since the MAC is keyed by the derived key.
func Decrypt(serialized, secretKey string) (string, error) {
	if strings.TrimSpace(serialized) == "" {
		return "", eserrors.ErrEmptyCipherText
	}

	env, err := ParseEnvelope(serialized)
	if err != nil {
		return "", err
	}

	key := DeriveKey(secretKey, env.Salt)

	expected := ComputeMac(env.Salt, env.IV, env.CipherText, key)
	if !hmac.Equal([]byte(expected), []byte(env.Mac)) {
		return "", eserrors.ErrIntegrityCheckFailed
	}

	iv, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil || len(iv) != aes.BlockSize {
		return "", eserrors.ErrDecryptionFailed
	}
	cipherText, err := base64.StdEncoding.DecodeString(env.CipherText)
	if err != nil || len(cipherText) == 0 || len(cipherText)%aes.BlockSize != 0 {
		return "", eserrors.ErrDecryptionFailed
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", eserrors.ErrDecryptionFailed
	}

	plaintext := make([]byte, len(cipherText))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, cipherText)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil || len(unpadded) == 0 {
		// Wrong key and corrupted ciphertext both land here and must stay
		// indistinguishable in the returned error.
		return "", eserrors.ErrDecryptionFailed
	}

	return string(unpadded), nil
}
