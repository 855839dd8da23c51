// Package hex encodes and decodes hexadecimal with the SIMD accelerated xhex.
package hex

import (
	"encoding/hex"

	"github.com/templexxx/xhex"
)

// ErrLength is returned when decoding hex of odd length.
var ErrLength = hex.ErrLength

// Enc returns the lower case hex of b.
func Enc(b []byte) (s string) { return string(EncAppend(nil, b)) }

// Dec decodes the hex in s.
func Dec(s string) (b []byte, err error) { return DecAppend(nil, []byte(s)) }

// EncAppend appends the hex of src to dst.
func EncAppend(dst, src []byte) (b []byte) {
	if len(src) == 0 {
		return dst
	}
	l := len(dst)
	dst = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// DecAppend appends the bytes decoded from the hex in src to dst.
func DecAppend(dst, src []byte) (b []byte, err error) {
	if len(src)%2 != 0 {
		err = ErrLength
		return
	}
	if b = dst; len(src) == 0 {
		return
	}
	l := len(dst)
	b = append(dst, make([]byte, len(src)/2)...)
	if err = xhex.Decode(b[l:], src); err != nil {
		b = dst
	}
	return
}
