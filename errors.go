package keywrap

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidToken is returned by Unwrap for every rejected token.
	// Malformed encoding, truncated payloads, and MAC mismatches are
	// deliberately indistinguishable at this boundary.
	ErrInvalidToken = errors.New("invalid token")
)
