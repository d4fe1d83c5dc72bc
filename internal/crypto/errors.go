package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrMalformedToken is returned when a token is not valid base64url
	// or its decoded payload is shorter than the tag-plus-salt header.
	ErrMalformedToken = errors.New("malformed token")

	// ErrAuthenticationFailed is returned when the truncated MAC does
	// not match the decoded payload.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
