package crypto

import (
	"encoding/binary"
	"hash/crc32"
)

// ContentSalt derives the 4-byte token salt from the plaintext itself:
// the big-endian CRC-32 (IEEE) checksum of data.
//
// Content-derived salts make wrapping fully deterministic. Two wraps of
// the same plaintext under the same secret produce the same key, the
// same ciphertext, and the same token. See the package documentation
// for the security trade-off this implies.
func ContentSalt(data []byte) []byte {
	salt := make([]byte, SaltSize)
	binary.BigEndian.PutUint32(salt, crc32.ChecksumIEEE(data))
	return salt
}
