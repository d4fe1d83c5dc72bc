package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Tag computes the truncated authentication tag over salt || body:
// HMAC-SHA256 keyed with the derived key, keeping the first TagSize
// bytes.
func Tag(key, salt, body []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(salt)
	mac.Write(body)
	return mac.Sum(nil)[:TagSize]
}

// VerifyTag reports whether candidate is the correct tag for
// salt || body under key. The comparison is constant-time.
func VerifyTag(key, salt, body, candidate []byte) bool {
	if len(candidate) != TagSize {
		return false
	}
	return hmac.Equal(Tag(key, salt, body), candidate)
}
