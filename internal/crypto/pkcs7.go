package crypto

import "errors"

var errBadPadding = errors.New("invalid pkcs7 padding")

// pkcs7Pad appends PKCS7 padding so the result is a whole number of blocks.
// Input that is already block-aligned gains a full block of padding.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad strips and validates PKCS7 padding. Every padding byte must
// equal the padding length.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errBadPadding
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, errBadPadding
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errBadPadding
		}
	}

	return data[:len(data)-padLen], nil
}
