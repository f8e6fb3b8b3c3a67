// Package hash wraps xxHash64 for content fingerprints.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest is a streaming xxHash64 state.
type Digest = xxhash.Digest

// NewDigest returns a streaming xxHash64 digest.
func NewDigest() *Digest {
	return xxhash.New()
}
