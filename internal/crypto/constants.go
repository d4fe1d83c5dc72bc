package crypto

const (
	// KeySize is the size of the derived AES-256 key in bytes.
	KeySize = 32

	// SaltSize is the size of the content-derived CRC-32 salt in bytes.
	SaltSize = 4

	// TagSize is the size of the truncated HMAC-SHA256 tag in bytes.
	TagSize = 4

	// HeaderSize is the combined size of the tag and salt that prefix
	// the ciphertext in a decoded token.
	HeaderSize = TagSize + SaltSize

	// DefaultIterations is the PBKDF2 iteration count of the
	// wire-compatible token format.
	DefaultIterations = 1
)
