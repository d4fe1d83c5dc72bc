package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// applyCTR runs AES-256-CTR over data with a 128-bit big-endian counter
// starting at zero. CTR is an XOR stream, so the same transform both
// encrypts and decrypts.
func applyCTR(key, data []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	out := make([]byte, len(data))
	cipher.NewCTR(block, iv).XORKeyStream(out, data)

	return out, nil
}

// EncryptCTR encrypts plaintext with AES-256-CTR, counter starting at
// zero. The ciphertext has the same length as the plaintext.
func EncryptCTR(key, plaintext []byte) ([]byte, error) {
	return applyCTR(key, plaintext)
}

// DecryptCTR decrypts ciphertext produced by EncryptCTR.
func DecryptCTR(key, ciphertext []byte) ([]byte, error) {
	return applyCTR(key, ciphertext)
}
