package types

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash32Length is the size of a governance object identifier and of a contract fingerprint.
const Hash32Length = 32

// Hash32 is a 32-byte identifier.
type Hash32 [Hash32Length]byte

// EmptyHash32 is the zero value of Hash32.
var EmptyHash32 = Hash32{}

// BytesToHash sets b to hash.
// If b is larger than len(h), b will be cropped from the left.
func BytesToHash(b []byte) Hash32 {
	var h Hash32
	h.SetBytes(b)
	return h
}

// HexToHash32 decodes hex (with or without 0x prefix) into a hash.
func HexToHash32(s string) (Hash32, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return EmptyHash32, fmt.Errorf("decode hash %q: %w", s, err)
	}
	if len(b) != Hash32Length {
		return EmptyHash32, fmt.Errorf("decode hash %q: invalid length %d", s, len(b))
	}
	return BytesToHash(b), nil
}

// SetBytes sets the hash to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash32) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-Hash32Length:]
	}
	copy(h[Hash32Length-len(b):], b)
}

// Bytes gets the byte representation of the underlying hash.
func (h Hash32) Bytes() []byte { return h[:] }

// Hex converts a hash to a hex string.
func (h Hash32) Hex() string { return hex.EncodeToString(h[:]) }

// String implements the stringer interface.
func (h Hash32) String() string { return h.Hex() }

// ShortString returns the first 10 characters of the hash, for logging purposes.
func (h Hash32) ShortString() string { return h.Hex()[:10] }

// Empty returns true if the hash is all zeroes.
func (h Hash32) Empty() bool { return h == EmptyHash32 }

// Compare orders hashes by their hex representation, which is byte order.
func (h Hash32) Compare(other Hash32) int { return bytes.Compare(h[:], other[:]) }

// MarshalText returns the hex representation of h.
func (h Hash32) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }

// UnmarshalText parses a hash in hex syntax.
func (h *Hash32) UnmarshalText(input []byte) error {
	parsed, err := HexToHash32(string(input))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// RandomHash returns a random hash, for tests.
func RandomHash() Hash32 {
	var h Hash32
	_, _ = rand.Read(h[:])
	return h
}
