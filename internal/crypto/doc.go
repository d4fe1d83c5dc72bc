// Package crypto provides the cryptographic primitives for the keywrap
// token format: key derivation, counter-mode encryption, truncated
// message authentication, and the URL-safe framing codec.
//
// # Algorithm Suite
//
// The package uses the following algorithms:
//
//   - PBKDF2-HMAC-SHA1 (RFC 8018) with a single iteration: derives the
//     32-byte working key from the caller secret and the per-token salt.
//     One iteration is deliberate; the secret is assumed to be
//     high-entropy key material, so the KDF acts as key separation
//     rather than password hardening.
//
//   - AES-256-CTR with a 128-bit counter starting at zero: encrypts the
//     plaintext with no padding, so the ciphertext has the same length
//     as the plaintext.
//
//   - HMAC-SHA256 truncated to 4 bytes: authenticates salt and
//     ciphertext together. Truncation trades forgery resistance for
//     token compactness.
//
//   - CRC-32 (IEEE) of the plaintext, big-endian encoded: the 4-byte
//     salt. The salt is a function of the content, not a random nonce.
//
// # Security Model
//
// Because the salt is derived from the plaintext and the CTR counter
// always starts at zero, wrapping the same plaintext under the same
// secret always produces the same token. This determinism is part of
// the format's contract (it makes tokens cacheable and deduplicable)
// and it forfeits ciphertext indistinguishability: an observer can tell
// whether two tokens carry the same plaintext. Callers who need
// IND-CPA security should not use this scheme.
//
// Tag verification uses a constant-time comparison and happens before
// decryption. Failure causes are distinguished inside this package for
// testing and diagnostics, but the public API collapses them into a
// single error so that callers never act as an oracle for which check
// rejected a token.
package crypto
