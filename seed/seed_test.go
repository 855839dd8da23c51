package seed

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"lukechampine.com/frand"

	"nostrkeygen.lol/hex"
)

func TestDeriveKnownDigests(t *testing.T) {
	s := Derive(nil)
	if hex.Enc(s.Bytes()) != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Fatalf("empty input gave %x", s)
	}
	s = Derive(by{0})
	if hex.Enc(s.Bytes()) != "6e340b9cffb37a989ca544e6bb780a2c78901d3fb33738768511a30617afa01d" {
		t.Fatalf("single zero byte gave %x", s)
	}
}

func TestDeriveDeterministic(t *testing.T) {
	for range 100 {
		b := frand.Bytes(frand.Intn(1024))
		if Derive(b) != Derive(append(by{}, b...)) {
			t.Fatal("same input produced different seeds")
		}
	}
}

func TestDeriveSingleBitSensitivity(t *testing.T) {
	b := frand.Bytes(64)
	orig := Derive(b)
	for i := range len(b) * 8 {
		flipped := append(by{}, b...)
		flipped[i/8] ^= 1 << (i % 8)
		if Derive(flipped) == orig {
			t.Fatalf("flipping bit %d did not change the seed", i)
		}
	}
}

func TestFromReaderMatchesDerive(t *testing.T) {
	var err error
	for _, size := range []int{0, 1, 63, 64, 65, 100_000} {
		b := frand.Bytes(size)
		var s T
		if s, err = FromReader(iotest.OneByteReader(bytes.NewReader(b))); chk.E(err) {
			t.Fatal(err)
		}
		if s != Derive(b) {
			t.Fatalf("streamed seed differs for %d bytes", size)
		}
	}
}

func TestFromReaderError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := FromReader(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}
}
