package crypto

import (
	"crypto/sha1"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey derives the 32-byte working key from the caller secret and
// the per-token salt using PBKDF2-HMAC-SHA1.
//
// The same key drives both the CTR cipher and the HMAC tag. With the
// default single iteration this is a key-separation step, not password
// hardening; raising the count changes the derived key and therefore
// the wire format.
func DeriveKey(secret, salt []byte, iterations int) []byte {
	return pbkdf2.Key(secret, salt, iterations, KeySize, sha1.New)
}
