// Package keys derives secp256k1 key pairs from a seed, refusing seeds that
// are not a valid secret scalar instead of reducing them modulo the group
// order.
package keys

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"nostrkeygen.lol/seed"
)

const (
	SecKeyLen      = secp256k1.PrivKeyBytesLen
	PubKeyLen      = secp256k1.PubKeyBytesLenCompressed
	XOnlyPubKeyLen = schnorr.PubKeyBytesLen
)

// ErrKeyDerivation is wrapped by every error caused by a seed or secret that
// does not map to a scalar in [1, n-1].
var ErrKeyDerivation = errors.New("key derivation failed")

// Pair is a secp256k1 secret key and its public key, held with their
// serialized forms.
type Pair struct {
	sec           *secp256k1.PrivateKey
	pub           *secp256k1.PublicKey
	skb, pkb, xob by
}

// scalar reads 32 big-endian bytes as a secret scalar, failing if the value
// is zero or not below the group order.
func scalar(b *[SecKeyLen]byte) (s *secp256k1.ModNScalar, err er) {
	s = new(secp256k1.ModNScalar)
	if overflow := s.SetBytes(b); overflow != 0 {
		err = errorf.D("%w: scalar %x is not below the secp256k1 group order",
			ErrKeyDerivation, b[:])
		return
	}
	if s.IsZero() {
		err = errorf.D("%w: scalar is zero", ErrKeyDerivation)
		return
	}
	return
}

func newPair(s *secp256k1.ModNScalar) (p *Pair) {
	p = &Pair{sec: secp256k1.NewPrivateKey(s)}
	p.pub = p.sec.PubKey()
	p.skb = p.sec.Serialize()
	p.pkb = p.pub.SerializeCompressed()
	p.xob = schnorr.SerializePubKey(p.pub)
	return
}

// Generate derives the key pair whose secret scalar is the seed read as a big
// endian 256 bit integer.
func Generate(sd seed.T) (p *Pair, err er) {
	var s *secp256k1.ModNScalar
	b := [SecKeyLen]byte(sd)
	if s, err = scalar(&b); err != nil {
		return
	}
	p = newPair(s)
	log.T.F("generated key pair with public key %x", p.pkb)
	return
}

// FromSecret rebuilds a key pair from raw secret key bytes.
func FromSecret(sec by) (p *Pair, err er) {
	if len(sec) != SecKeyLen {
		err = errorf.D("%w: secret key is %d bytes, must be %d",
			ErrKeyDerivation, len(sec), SecKeyLen)
		return
	}
	var s *secp256k1.ModNScalar
	if s, err = scalar((*[SecKeyLen]byte)(sec)); err != nil {
		return
	}
	p = newPair(s)
	return
}

// Sec returns a copy of the 32 byte secret key.
func (p *Pair) Sec() (b by) { return append(by{}, p.skb...) }

// Pub returns a copy of the 33 byte compressed public key.
func (p *Pair) Pub() (b by) { return append(by{}, p.pkb...) }

// XOnly returns a copy of the 32 byte BIP-340 x-only public key.
func (p *Pair) XOnly() (b by) { return append(by{}, p.xob...) }

// Zero wipes the secret key. The pair cannot produce secret bytes afterwards.
func (p *Pair) Zero() {
	p.sec.Zero()
	clear(p.skb)
	p.skb = nil
}

// Matches reports whether pub, either compressed or x-only, is the public key
// of this pair.
func (p *Pair) Matches(pub by) (ok bo) {
	switch len(pub) {
	case PubKeyLen:
		ok = equals(pub, p.pkb)
	case XOnlyPubKeyLen:
		ok = equals(pub, p.xob)
	}
	return
}
