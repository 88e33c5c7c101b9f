// Package hash computes the blake3 digests used for contract fingerprints and object hashes.
package hash

import (
	"sync"

	"github.com/zeebo/blake3"
)

// Size of a digest in bytes.
const Size = 32

// hashers are reset before they go back into the pool.
var hashers = sync.Pool{
	New: func() any { return blake3.New() },
}

// Sum returns the blake3-256 digest of the concatenation of chunks.
func Sum(chunks ...[]byte) (out [Size]byte) {
	h := hashers.Get().(*blake3.Hasher)
	defer func() {
		h.Reset()
		hashers.Put(h)
	}()
	for _, chunk := range chunks {
		h.Write(chunk) // never fails
	}
	h.Sum(out[:0])
	return out
}

// SumStrings is Sum over the bytes of parts.
func SumStrings(parts ...string) [Size]byte {
	chunks := make([][]byte, len(parts))
	for i, part := range parts {
		chunks[i] = []byte(part)
	}
	return Sum(chunks...)
}
