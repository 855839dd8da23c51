package keys

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// ParsePub checks that pub is a point on the curve, encoded either in the 33
// byte compressed form or as a 32 byte x-only key.
func ParsePub(pub by) (err er) {
	switch len(pub) {
	case PubKeyLen:
		_, err = btcec.ParsePubKey(pub)
	case XOnlyPubKeyLen:
		_, err = schnorr.ParsePubKey(pub)
	default:
		err = errorf.D("public key is %d bytes, must be %d or %d",
			len(pub), PubKeyLen, XOnlyPubKeyLen)
	}
	return
}
