// Package seed turns arbitrary entropy bytes into the fixed size seed that a
// secp256k1 secret key is derived from.
package seed

import (
	"io"

	"nostrkeygen.lol/sha256"
)

// Len is the number of bytes in a seed.
const Len = sha256.Size

// T is a seed, the SHA-256 digest of the entropy input.
type T [Len]byte

// Derive hashes data, which may be empty, into a seed.
func Derive(data by) (s T) {
	s = sha256.Sum256(data)
	log.T.F("derived seed from %d bytes of entropy", len(data))
	return
}

// FromReader hashes everything read from r until EOF into a seed. It gives
// the same result as Derive over the same bytes without holding them all in
// memory.
func FromReader(r io.Reader) (s T, err er) {
	h := sha256.New()
	var n int64
	if n, err = io.Copy(h, r); chk.D(err) {
		return
	}
	copy(s[:], h.Sum(nil))
	log.T.F("derived seed from %d bytes of streamed entropy", n)
	return
}

// Bytes returns the seed as a slice.
func (s T) Bytes() (b by) { return s[:] }
