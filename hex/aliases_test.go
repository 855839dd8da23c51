package hex

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"lukechampine.com/frand"
)

func TestEncDecAppend(t *testing.T) {
	for range 1000 {
		src := frand.Bytes(frand.Intn(64) + 1)
		h := EncAppend(nil, src)
		if string(h) != hex.EncodeToString(src) {
			t.Fatalf("xhex and encoding/hex disagree: %s %s", h, hex.EncodeToString(src))
		}
		dec, err := DecAppend([]byte{0xff}, h)
		if err != nil {
			t.Fatal(err)
		}
		if dec[0] != 0xff || !bytes.Equal(dec[1:], src) {
			t.Fatalf("round trip failed: %x -> %x", src, dec)
		}
	}
	if _, err := DecAppend(nil, []byte("abc")); err == nil {
		t.Fatal("odd length hex accepted")
	}
}

func TestEncDec(t *testing.T) {
	for range 1000 {
		src := frand.Bytes(frand.Intn(64))
		s := Enc(src)
		if s != hex.EncodeToString(src) {
			t.Fatalf("Enc gave %s for %x", s, src)
		}
		b, err := Dec(s)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(b, src) {
			t.Fatalf("Dec gave %x for %s", b, s)
		}
	}
	if _, err := Dec("0"); !errors.Is(err, ErrLength) {
		t.Fatalf("odd length: got %v", err)
	}
	if _, err := Dec("zz"); err == nil {
		t.Fatal("non hex characters accepted")
	}
}
