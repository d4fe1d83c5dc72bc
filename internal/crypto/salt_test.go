package crypto

import (
	"bytes"
	"testing"
)

func TestContentSalt_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{"hello world", []byte("hello world"), []byte{0x0d, 0x4a, 0x11, 0x85}},
		{"empty", []byte{}, []byte{0x00, 0x00, 0x00, 0x00}},
		{"nil", nil, []byte{0x00, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentSalt(tt.data)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ContentSalt() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestContentSalt_Size(t *testing.T) {
	if got := len(ContentSalt([]byte("anything"))); got != SaltSize {
		t.Errorf("salt length = %d, want %d", got, SaltSize)
	}
}

func TestContentSalt_Deterministic(t *testing.T) {
	a := ContentSalt([]byte("payload"))
	b := ContentSalt([]byte("payload"))
	if !bytes.Equal(a, b) {
		t.Errorf("same content produced different salts: %x vs %x", a, b)
	}

	c := ContentSalt([]byte("payloae"))
	if bytes.Equal(a, c) {
		t.Errorf("different content produced the same salt: %x", a)
	}
}
