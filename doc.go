// Package keywrap turns an opaque secret and a plaintext byte sequence
// into a single compact, URL-safe token, and reverses the transform
// with integrity verification. It is intended for wrapping small
// application values such as session or capability tokens so they can
// be embedded in a URL, query string, or header.
//
// Basic usage:
//
//	secret := []byte("topsecret")
//
//	token := keywrap.Wrap(secret, []byte("hello world"))
//
//	data, err := keywrap.Unwrap(secret, token)
//	if err != nil {
//	    // token was malformed or tampered with
//	}
//
// # Token Format
//
// A token is URL-safe base64 (no padding) over the byte layout:
//
//	tag[0:4] || salt[4:8] || ciphertext[8:]
//
// Where:
//   - Tag: first 4 bytes of HMAC-SHA256 over salt || ciphertext, keyed
//     with the derived key.
//   - Salt: big-endian CRC-32 checksum of the plaintext.
//   - Ciphertext: AES-256-CTR output, same length as the plaintext.
//
// The key is derived per token as PBKDF2-HMAC-SHA1(secret, salt) with
// one iteration and 32 bytes of output, and the CTR counter always
// starts at zero.
//
// # Determinism
//
// The salt is computed from the plaintext, not drawn at random, so
// wrapping the same data under the same secret always yields the same
// token. This is a deliberate property of the format: identical inputs
// map to identical tokens, which makes them safe to cache and
// deduplicate. The cost is that the scheme provides no ciphertext
// indistinguishability; an observer can tell when two tokens carry the
// same plaintext. Do not use this package where IND-CPA security is
// required.
//
// # Error Handling
//
// Unwrap returns [ErrInvalidToken] for every rejected input: bad
// encoding, truncated payload, and authentication failure are
// indistinguishable at the API boundary. Collapsing them denies an
// attacker an oracle for which check rejected a forgery.
//
// # Security Notes
//
// The 4-byte tag gives roughly 2^32 forgery resistance, which suits
// short-lived tokens; use a full MAC elsewhere if tokens must stay
// valid for long periods. Key lifecycle, distribution, and expiry are
// the caller's responsibility: the package derives a fresh key for
// every call and stores nothing.
//
// All functions are stateless and safe for concurrent use.
package keywrap
