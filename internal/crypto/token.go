package crypto

// Frame is the decoded layout of a token: a truncated MAC tag, the
// content-derived salt, and the CTR ciphertext.
type Frame struct {
	// Tag is the first TagSize bytes of HMAC-SHA256(key, salt || body).
	Tag []byte
	// Salt is the big-endian CRC-32 checksum of the plaintext.
	Salt []byte
	// Body is the AES-256-CTR ciphertext, same length as the plaintext.
	Body []byte
}

// SplitToken decodes a token and splits it into its frame fields.
//
// A payload of exactly HeaderSize bytes is the wrap of an empty
// plaintext and yields an empty Body. Anything shorter, or input that
// is not valid base64url, returns ErrMalformedToken. SplitToken checks
// framing only; it does not verify the tag.
func SplitToken(token string) (*Frame, error) {
	raw, err := FromBase64URL(token)
	if err != nil {
		return nil, ErrMalformedToken
	}

	if len(raw) < HeaderSize {
		return nil, ErrMalformedToken
	}

	return &Frame{
		Tag:  raw[:TagSize],
		Salt: raw[TagSize:HeaderSize],
		Body: raw[HeaderSize:],
	}, nil
}
