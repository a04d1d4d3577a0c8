package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// ContentKey computes the 128-bit xxh3 hash of data as 16 big-endian bytes.
func ContentKey(data []byte) [16]byte {
	h := xxh3.Hash128(data)

	var key [16]byte
	binary.BigEndian.PutUint64(key[0:8], h.Hi)
	binary.BigEndian.PutUint64(key[8:16], h.Lo)

	return key
}
