// Package hash contains hash functions suitable for use as chainmap
// hashers. All of them are pure and deterministic.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// String hashes a string.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Bytes hashes a byte slice.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Uint64 hashes an unsigned 64-bit integer through its little-endian
// encoding.
func Uint64(u uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], u)
	return xxhash.Sum64(b[:])
}

// Int hashes a signed integer through its 64-bit little-endian encoding.
func Int(i int) uint64 {
	return Uint64(uint64(i))
}
