package crypto

import (
	"encoding/json"
	"fmt"

	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
)

// Envelope is the unit of encrypted data: a fresh salt and IV, the
// AES-CBC ciphertext, and an HMAC binding all three to the derived key.
// All fields are base64 strings except Mac, which is hex. Envelopes are
// immutable once constructed; decryption never mutates them.
type Envelope struct {
	Salt       string `json:"salt"`
	IV         string `json:"iv"`
	CipherText string `json:"cipherText"`
	Mac        string `json:"mac"`
}

// Marshal serializes the envelope to its compact JSON form.
func (e *Envelope) Marshal() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("%w: %v", eserrors.ErrEncryptionFailure, err)
	}
	return string(data), nil
}

// ParseEnvelope deserializes an envelope and validates that all four
// required fields are present and non-empty. Unknown fields are ignored;
// missing fields are fatal. Validation happens once, here, at the
// deserialization boundary.
func ParseEnvelope(serialized string) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(serialized), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", eserrors.ErrInvalidEnvelopeFormat, err)
	}

	missing := ""
	switch {
	case env.Salt == "":
		missing = "salt"
	case env.IV == "":
		missing = "iv"
	case env.CipherText == "":
		missing = "cipherText"
	case env.Mac == "":
		missing = "mac"
	}
	if missing != "" {
		return nil, fmt.Errorf("%w: missing field %q", eserrors.ErrInvalidEnvelopeFormat, missing)
	}

	return &env, nil
}
