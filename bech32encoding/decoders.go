package bech32encoding

import (
	"nostrkeygen.lol/bech32"
	"nostrkeygen.lol/keys"
)

// Decode parses an nsec or npub and returns its prefix and key bytes, after
// checking the payload length suits the prefix and that a public key is a
// point on the curve.
func Decode[V st | by](encoded V) (prefix, key by, err er) {
	var b5 by
	if prefix, b5, err = bech32.Decode(by(encoded)); chk.D(err) {
		err = errorf.D("%w: %w", ErrEncoding, err)
		return
	}
	if key, err = ConvertFromBech32(b5); chk.D(err) {
		err = errorf.D("%w: failed translating data into 8 bits: %w", ErrEncoding, err)
		return nil, nil, err
	}
	switch {
	case equals(prefix, NsecHRP):
		if len(key) != keys.SecKeyLen {
			err = errorf.D("%w: nsec holds %d bytes, must be %d", ErrEncoding,
				len(key), keys.SecKeyLen)
		}
	case equals(prefix, NpubHRP):
		if err = keys.ParsePub(key); err != nil {
			err = errorf.D("%w: npub does not hold a public key: %w", ErrEncoding, err)
		}
	default:
		err = errorf.D("%w: unknown prefix '%s'", ErrEncoding, prefix)
	}
	if err != nil {
		return nil, nil, err
	}
	return
}
