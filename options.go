package keywrap

import (
	"github.com/keywrap/keywrap-go/internal/crypto"
)

// wrapperConfig holds configuration for a Wrapper.
type wrapperConfig struct {
	iterations int
}

// Option configures a Wrapper.
type Option func(*wrapperConfig)

// WithIterations sets the PBKDF2 iteration count used for key
// derivation. Values below 1 are ignored.
//
// The default is 1, which the wire-compatible token format requires:
// the secret is expected to be high-entropy key material, and the KDF
// serves as key separation rather than password hardening. A Wrapper
// with a different count produces and accepts only its own tokens; it
// rejects default-format tokens and vice versa.
func WithIterations(n int) Option {
	return func(cfg *wrapperConfig) {
		if n >= 1 {
			cfg.iterations = n
		}
	}
}

func defaultConfig() wrapperConfig {
	return wrapperConfig{
		iterations: crypto.DefaultIterations,
	}
}
