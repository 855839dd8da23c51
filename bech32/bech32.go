package bech32

import (
	"bytes"
)

// Charset is the set of characters used in the data section of bech32
// strings, indexed by 5 bit value.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const (
	// Separator divides the human-readable part from the data.
	Separator = '1'
	// ChecksumLen is the number of characters of the checksum.
	ChecksumLen = 6
	// MaxLen is the BIP-173 limit on the length of a whole string.
	MaxLen = 90
	// MinLen is one character of human-readable part, the separator and the
	// checksum.
	MinLen = 1 + 1 + ChecksumLen
)

// gen is the generator of the BCH code.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// charsetRev maps an ASCII character to its 5 bit value, or -1.
var charsetRev [128]int8

func init() {
	for i := range charsetRev {
		charsetRev[i] = -1
	}
	for i := range Charset {
		charsetRev[Charset[i]] = int8(i)
	}
}

// polymod runs the BCH checksum over the expanded hrp followed by values. The
// hrp expansion is the high 3 bits of each character, a zero, then the low 5
// bits of each character.
func polymod(hrp by, values ...by) (c uint32) {
	c = 1
	step := func(v byte) {
		top := c >> 25
		c = (c&0x1ffffff)<<5 ^ uint32(v)
		for i := range gen {
			if (top>>i)&1 == 1 {
				c ^= gen[i]
			}
		}
	}
	for _, h := range hrp {
		step(h >> 5)
	}
	step(0)
	for _, h := range hrp {
		step(h & 31)
	}
	for _, vs := range values {
		for _, v := range vs {
			step(v)
		}
	}
	return
}

// checksum returns the six 5 bit values that make polymod of hrp, data and
// the checksum equal 1.
func checksum(hrp, data by) (sum by) {
	pm := polymod(hrp, data, make(by, ChecksumLen)) ^ 1
	sum = make(by, ChecksumLen)
	for i := range sum {
		sum[i] = byte(pm>>(5*(ChecksumLen-1-i))) & 31
	}
	return
}

// verify reports whether the 5 bit values, with the checksum still attached,
// are valid for hrp.
func verify(hrp, values by) bo { return polymod(hrp, values) == 1 }

// checkCase validates that every character is printable US-ASCII and the
// string is not mixed case, returning the lower case form.
func checkCase(s by) (lower by, err er) {
	var hasLower, hasUpper bo
	for _, c := range s {
		if c < 33 || c > 126 {
			err = ErrInvalidCharacter(c)
			return
		}
		hasLower = hasLower || (c >= 'a' && c <= 'z')
		hasUpper = hasUpper || (c >= 'A' && c <= 'Z')
		if hasLower && hasUpper {
			err = ErrMixedCase{}
			return
		}
	}
	lower = bytes.ToLower(s)
	return
}

// Encode renders hrp and the 5 bit values in data as a bech32 string. The
// human-readable part is lowercased, and must be non-empty printable US-ASCII
// of a single case.
func Encode(hrp, data by) (encoded by, err er) {
	if len(hrp) == 0 {
		err = ErrInvalidSeparatorIndex(0)
		return
	}
	if hrp, err = checkCase(hrp); err != nil {
		return
	}
	for _, v := range data {
		if v >= 32 {
			err = ErrInvalidDataByte(v)
			return
		}
	}
	sum := checksum(hrp, data)
	encoded = make(by, 0, len(hrp)+1+len(data)+ChecksumLen)
	encoded = append(encoded, hrp...)
	encoded = append(encoded, Separator)
	for _, v := range data {
		encoded = append(encoded, Charset[v])
	}
	for _, v := range sum {
		encoded = append(encoded, Charset[v])
	}
	return
}

// EncodeFromBase256 regroups data from bytes into 5 bit values, padding the
// last group, and encodes it with hrp.
func EncodeFromBase256(hrp, data by) (encoded by, err er) {
	var b5 by
	if b5, err = Convert8to5(data, true); err != nil {
		return
	}
	return Encode(hrp, b5)
}

// Decode parses and validates a bech32 string no longer than MaxLen,
// returning the lower case human-readable part and the 5 bit data values
// without the checksum.
func Decode(encoded by) (hrp, data by, err er) {
	if len(encoded) > MaxLen {
		err = ErrInvalidLength(len(encoded))
		return
	}
	return DecodeNoLimit(encoded)
}

// DecodeNoLimit is Decode without the MaxLen restriction.
func DecodeNoLimit(encoded by) (hrp, data by, err er) {
	if len(encoded) < MinLen {
		err = ErrInvalidLength(len(encoded))
		return
	}
	var lower by
	if lower, err = checkCase(encoded); err != nil {
		return
	}
	sep := bytes.LastIndexByte(lower, Separator)
	if sep < 1 || sep+ChecksumLen+1 > len(lower) {
		err = ErrInvalidSeparatorIndex(sep)
		return
	}
	hrp = lower[:sep]
	values := make(by, 0, len(lower)-sep-1)
	for _, c := range lower[sep+1:] {
		// checkCase already bounded c to 33..126
		v := charsetRev[c]
		if v < 0 {
			err = ErrNonCharsetChar(c)
			hrp = nil
			return
		}
		values = append(values, byte(v))
	}
	if !verify(hrp, values) {
		body := values[:len(values)-ChecksumLen]
		expected := make(by, 0, ChecksumLen)
		for _, v := range checksum(hrp, body) {
			expected = append(expected, Charset[v])
		}
		err = ErrInvalidChecksum{
			Expected: st(expected),
			Actual:   st(lower[len(lower)-ChecksumLen:]),
		}
		hrp = nil
		return
	}
	data = values[:len(values)-ChecksumLen]
	return
}

// DecodeToBase256 decodes a bech32 string and regroups the data from 5 bit
// values back into bytes. Non-zero or over-long padding is rejected.
func DecodeToBase256(encoded by) (hrp, data by, err er) {
	var b5 by
	if hrp, b5, err = Decode(encoded); err != nil {
		return
	}
	if data, err = Convert5to8(b5, false); err != nil {
		hrp = nil
	}
	return
}

// ConvertBits regroups data, whose values are fromBits wide, into values
// toBits wide, most significant bit first. With pad set a final partial group
// is filled with zero bits. Without it, a leftover of fromBits or more bits,
// or leftover bits that are not zero, is an error.
func ConvertBits(data by, fromBits, toBits uint8, pad bo) (regrouped by, err er) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		err = ErrInvalidBitGroups{}
		return
	}
	var (
		acc    uint32
		bits   uint8
		maxv   = uint32(1)<<toBits - 1
		maxAcc = uint32(1)<<(fromBits+toBits-1) - 1
	)
	regrouped = make(by, 0, len(data)*no(fromBits)/no(toBits)+1)
	for _, v := range data {
		if uint32(v)>>fromBits != 0 {
			err = ErrInvalidDataByte(v)
			regrouped = nil
			return
		}
		acc = (acc<<fromBits | uint32(v)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxv))
		}
	}
	switch {
	case pad:
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&maxv))
		}
	case bits >= fromBits || acc<<(toBits-bits)&maxv != 0:
		err = ErrInvalidIncompleteGroup{}
		regrouped = nil
	}
	return
}

// Convert8to5 regroups bytes into 5 bit values.
func Convert8to5(data by, pad bo) (by, er) { return ConvertBits(data, 8, 5, pad) }

// Convert5to8 regroups 5 bit values into bytes.
func Convert5to8(data by, pad bo) (by, er) { return ConvertBits(data, 5, 8, pad) }
