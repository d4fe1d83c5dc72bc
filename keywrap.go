package keywrap

import (
	"github.com/keywrap/keywrap-go/internal/crypto"
)

// defaultWrapper backs the package-level Wrap and Unwrap. It carries no
// mutable state, so sharing it between goroutines needs no coordination.
var defaultWrapper = New()

// Wrap seals data under secret and returns the URL-safe token.
//
// Wrap never fails for byte-sequence inputs; secret and data may both
// be empty. Wrapping is deterministic: the same secret and data always
// produce the same token.
func Wrap(secret, data []byte) string {
	return defaultWrapper.Wrap(secret, data)
}

// Unwrap verifies token under secret and returns the original data.
// It returns ErrInvalidToken if the token is malformed, truncated, or
// fails authentication.
func Unwrap(secret []byte, token string) ([]byte, error) {
	return defaultWrapper.Unwrap(secret, token)
}

// Wrapper wraps and unwraps tokens with a fixed configuration. The
// zero-value configuration produced by New matches the wire format of
// the package-level functions.
type Wrapper struct {
	cfg wrapperConfig
}

// New creates a Wrapper.
func New(opts ...Option) *Wrapper {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Wrapper{cfg: cfg}
}

// Wrap seals data under secret and returns the URL-safe token.
func (w *Wrapper) Wrap(secret, data []byte) string {
	salt := crypto.ContentSalt(data)
	key := crypto.DeriveKey(secret, salt, w.cfg.iterations)

	body, err := crypto.EncryptCTR(key, data)
	if err != nil {
		// Unreachable: DeriveKey output is always KeySize bytes.
		panic("keywrap: " + err.Error())
	}

	tag := crypto.Tag(key, salt, body)

	raw := make([]byte, 0, crypto.HeaderSize+len(body))
	raw = append(raw, tag...)
	raw = append(raw, salt...)
	raw = append(raw, body...)

	return crypto.ToBase64URL(raw)
}

// Unwrap verifies token under secret and returns the original data.
//
// The tag is verified before decryption, and every failure surfaces as
// ErrInvalidToken regardless of cause.
func (w *Wrapper) Unwrap(secret []byte, token string) ([]byte, error) {
	frame, err := crypto.SplitToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	key := crypto.DeriveKey(secret, frame.Salt, w.cfg.iterations)

	if !crypto.VerifyTag(key, frame.Salt, frame.Body, frame.Tag) {
		return nil, ErrInvalidToken
	}

	data, err := crypto.DecryptCTR(key, frame.Body)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return data, nil
}
