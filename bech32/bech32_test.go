package bech32

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	btcbech32 "github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestDecodeValidVectors(t *testing.T) {
	valid := []struct {
		s, hrp string
	}{
		{"A12UEL5L", "a"},
		{"a12uel5l", "a"},
		{"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs",
			"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio"},
		{"abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw", "abcdef"},
		{"split1checkupstagehandshakeupstreamerranterredcaperred2y9e3w", "split"},
		{"?1ezyfcl", "?"},
	}
	for _, v := range valid {
		hrp, data, err := Decode(by(v.s))
		require.NoError(t, err, v.s)
		require.Equal(t, v.hrp, st(hrp))
		// re-encoding gives back the lower case form
		var enc by
		enc, err = Encode(hrp, data)
		require.NoError(t, err)
		require.Equal(t, strings.ToLower(v.s), st(enc))
	}
}

func TestDecodeInvalidVectors(t *testing.T) {
	invalid := []struct {
		s    string
		want er
	}{
		{"\x201nwldj5", ErrInvalidCharacter(' ')},
		{"\x7f1axkwrx", ErrInvalidCharacter(0x7f)},
		{"\x801eym55h", ErrInvalidCharacter(0x80)},
		{"an84characterslonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1569pvx",
			ErrInvalidLength(91)},
		{"pzry9x0s0muk", ErrInvalidSeparatorIndex(-1)},
		{"1pzry9x0s0muk", ErrInvalidSeparatorIndex(0)},
		{"x1b4n0q5v", ErrNonCharsetChar('b')},
		{"li1dgmt3", ErrInvalidSeparatorIndex(2)},
		{"de1lg7wt\xff", ErrInvalidCharacter(0xff)},
		{"10a06t8", ErrInvalidLength(7)},
		{"1qzzfhee", ErrInvalidSeparatorIndex(0)},
		{"a12UEL5L", ErrMixedCase{}},
		{"a1", ErrInvalidLength(2)},
	}
	for _, v := range invalid {
		_, _, err := Decode(by(v.s))
		require.Error(t, err, "%q", v.s)
		require.Equal(t, v.want, err, "%q", v.s)
	}
	// checksum computed over an upper case hrp is not valid
	_, _, err := Decode(by("A1G7SGD8"))
	var ce ErrInvalidChecksum
	require.True(t, errors.As(err, &ce), "got %v", err)
	require.Equal(t, "g7sgd8", ce.Actual)
}

func TestDecodeNoLimit(t *testing.T) {
	data := frand.Bytes(100)
	enc, err := EncodeFromBase256(by("long"), data)
	require.NoError(t, err)
	require.Greater(t, len(enc), MaxLen)
	_, _, err = Decode(enc)
	require.Equal(t, ErrInvalidLength(len(enc)), err)
	hrp, b5, err := DecodeNoLimit(enc)
	require.NoError(t, err)
	require.Equal(t, "long", st(hrp))
	b8, err := Convert5to8(b5, false)
	require.NoError(t, err)
	require.Equal(t, data, b8)
}

func TestEncodeRejects(t *testing.T) {
	_, err := Encode(nil, by{0})
	require.Error(t, err)
	_, err = Encode(by("nPub"), by{0})
	require.Equal(t, ErrMixedCase{}, err)
	_, err = Encode(by("n pub"), by{0})
	require.Equal(t, ErrInvalidCharacter(' '), err)
	_, err = Encode(by("npub"), by{1, 2, 32})
	require.Equal(t, ErrInvalidDataByte(32), err)
	enc, err := Encode(by("NPUB"), nil)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(enc, by("npub1")))
}

func TestSingleCharacterMutationRejected(t *testing.T) {
	for _, size := range []int{32, 33} {
		enc, err := EncodeFromBase256(by("npub"), frand.Bytes(size))
		require.NoError(t, err)
		sep := bytes.LastIndexByte(enc, Separator)
		for i := range enc {
			if i == sep {
				continue
			}
			alphabet := Charset
			if i < sep {
				alphabet = "abcdefghijklmnopqrstuvwxyz"
			}
			for j := range alphabet {
				if alphabet[j] == enc[i] {
					continue
				}
				mutated := append(by{}, enc...)
				mutated[i] = alphabet[j]
				if _, _, err = Decode(mutated); err == nil {
					t.Fatalf("mutation at %d to %c accepted: %s", i, alphabet[j], mutated)
				}
			}
		}
	}
}

func TestConvertBits(t *testing.T) {
	var err error
	var b5, b8 by
	for range 1000 {
		in := frand.Bytes(frand.Intn(64))
		if b5, err = Convert8to5(in, true); err != nil {
			t.Fatal(err)
		}
		for _, v := range b5 {
			if v >= 32 {
				t.Fatalf("5 bit value out of range: %d", v)
			}
		}
		if b8, err = Convert5to8(b5, false); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(in, b8) {
			t.Fatalf("round trip mismatch:\n%x\n%x", in, b8)
		}
	}
	b5, err = Convert8to5(by{0xff}, true)
	require.NoError(t, err)
	require.Equal(t, by{31, 28}, b5)
	// low bits of the last group must be zero padding
	_, err = Convert5to8(by{31, 29}, false)
	require.Equal(t, ErrInvalidIncompleteGroup{}, err)
	// a full spare 5 bit group cannot be padding
	_, err = Convert5to8(by{31, 28, 0}, false)
	require.Equal(t, ErrInvalidIncompleteGroup{}, err)
	_, err = Convert5to8(by{32}, false)
	require.Equal(t, ErrInvalidDataByte(32), err)
	_, err = ConvertBits(by{1}, 0, 5, true)
	require.Equal(t, ErrInvalidBitGroups{}, err)
	_, err = ConvertBits(by{1}, 8, 9, true)
	require.Equal(t, ErrInvalidBitGroups{}, err)
}

func TestKeyLengths(t *testing.T) {
	for _, c := range []struct {
		size, groups int
	}{
		{32, 52},
		{33, 53},
	} {
		b5, err := Convert8to5(make(by, c.size), true)
		require.NoError(t, err)
		require.Len(t, b5, c.groups)
		enc, err := Encode(by("nsec"), b5)
		require.NoError(t, err)
		require.Len(t, enc, 4+1+c.groups+ChecksumLen)
		require.LessOrEqual(t, len(enc), MaxLen)
	}
}

func TestMatchesReferenceCodec(t *testing.T) {
	for range 500 {
		hrp := []string{"nsec", "npub", "note", "bc", "a"}[frand.Intn(5)]
		data := frand.Bytes(frand.Intn(40))
		ours, err := EncodeFromBase256(by(hrp), data)
		require.NoError(t, err)
		ref5, err := btcbech32.ConvertBits(data, 8, 5, true)
		require.NoError(t, err)
		theirs, err := btcbech32.Encode(hrp, ref5)
		require.NoError(t, err)
		require.Equal(t, theirs, st(ours))
		refHrp, refData, err := btcbech32.Decode(st(ours))
		require.NoError(t, err)
		gotHrp, gotData, err := Decode(ours)
		require.NoError(t, err)
		require.Equal(t, refHrp, st(gotHrp))
		require.Equal(t, refData, gotData)
		_, b8, err := DecodeToBase256(ours)
		require.NoError(t, err)
		require.Equal(t, data, b8)
	}
}
