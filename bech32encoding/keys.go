package bech32encoding

import (
	"errors"

	"nostrkeygen.lol/bech32"
	"nostrkeygen.lol/keys"
)

const (
	// MinKeyStringLen is the length of an nsec or x-only npub: 4 characters of
	// prefix, the separator, 52 data characters and 6 of checksum.
	MinKeyStringLen = 63
	// HRPLen is the length of both key prefixes.
	HRPLen = 4
)

var (
	NsecHRP = by("nsec")
	NpubHRP = by("npub")
)

// ErrEncoding is wrapped by every failure to encode or decode key material.
var ErrEncoding = errors.New("bech32 encoding failed")

// ConvertForBech32 performs the bit expansion required for encoding into Bech32.
func ConvertForBech32(b8 by) (b5 by, err er) { return bech32.Convert8to5(b8, true) }

// ConvertFromBech32 collapses together the bit expanded 5 bit numbers encoded in bech32.
func ConvertFromBech32(b5 by) (b8 by, err er) { return bech32.Convert5to8(b5, false) }

// encode regroups the key bytes and encodes them under hrp.
func encode(hrp, key by) (encoded by, err er) {
	var b5 by
	if b5, err = ConvertForBech32(key); chk.D(err) {
		err = errorf.D("%w: regrouping %s payload: %w", ErrEncoding, hrp, err)
		return
	}
	if encoded, err = bech32.Encode(hrp, b5); chk.D(err) {
		err = errorf.D("%w: %s: %w", ErrEncoding, hrp, err)
		return
	}
	return
}

// SecretToNsec encodes a 32 byte secp256k1 secret key as an nsec.
func SecretToNsec(sec by) (nsec by, err er) {
	if len(sec) != keys.SecKeyLen {
		err = errorf.D("%w: secret key is %d bytes, must be %d", ErrEncoding,
			len(sec), keys.SecKeyLen)
		return
	}
	return encode(NsecHRP, sec)
}

// PublicToNpub encodes a public key as an npub. The key is either the 33 byte
// compressed form or the 32 byte x-only form used by NIP-19.
func PublicToNpub(pub by) (npub by, err er) {
	if len(pub) != keys.PubKeyLen && len(pub) != keys.XOnlyPubKeyLen {
		err = errorf.D("%w: public key is %d bytes, must be %d or %d", ErrEncoding,
			len(pub), keys.PubKeyLen, keys.XOnlyPubKeyLen)
		return
	}
	return encode(NpubHRP, pub)
}

// PairToStrings encodes both halves of a key pair, with the compressed public
// key in the npub unless xOnly is set.
func PairToStrings(p *keys.Pair, xOnly bo) (nsec, npub by, err er) {
	if nsec, err = SecretToNsec(p.Sec()); err != nil {
		return
	}
	pub := p.Pub()
	if xOnly {
		pub = p.XOnly()
	}
	if npub, err = PublicToNpub(pub); err != nil {
		nsec = nil
	}
	return
}

// NsecToSecret decodes an nsec and returns the 32 byte secret key.
func NsecToSecret[V st | by](nsec V) (sec by, err er) {
	var hrp by
	if hrp, sec, err = Decode(nsec); err != nil {
		return
	}
	if !equals(hrp, NsecHRP) {
		err = errorf.D("%w: wrong human readable part, got '%s' want '%s'",
			ErrEncoding, hrp, NsecHRP)
		sec = nil
	}
	return
}

// NpubToPublic decodes an npub and returns the public key bytes, 33 bytes if
// it held a compressed key or 32 if it held an x-only key.
func NpubToPublic[V st | by](npub V) (pub by, err er) {
	var hrp by
	if hrp, pub, err = Decode(npub); err != nil {
		return
	}
	if !equals(hrp, NpubHRP) {
		err = errorf.D("%w: wrong human readable part, got '%s' want '%s'",
			ErrEncoding, hrp, NpubHRP)
		pub = nil
	}
	return
}
