// Package keygen runs the whole derivation: entropy bytes are hashed into a
// seed, the seed becomes a secp256k1 key pair, and both keys are rendered as
// nsec and npub strings.
//
// Every step is deterministic, so the same input always gives the same pair,
// and a failing input fails every time.
package keygen

import (
	"errors"
	"io"

	"nostrkeygen.lol/bech32encoding"
	"nostrkeygen.lol/entropy"
	"nostrkeygen.lol/keys"
	"nostrkeygen.lol/seed"
)

// ErrMismatch is returned by Verify when the keys are valid but do not form
// a pair.
var ErrMismatch = errors.New("keys do not form a pair")

// Result is a derived key pair in both raw and encoded form.
type Result struct {
	Nsec st
	Npub st
	// Sec is the 32 byte secret key.
	Sec by
	// Pub is the public key as carried in Npub: 33 bytes compressed, or 32
	// bytes x-only when WithXOnly was given.
	Pub by
}

type options struct {
	xOnly    bo
	maxBytes int64
}

// Option changes how a key pair is derived or encoded.
type Option func(o *options)

// WithXOnly puts the 32 byte x-only public key in the npub, as NIP-19 clients
// expect, instead of the 33 byte compressed key.
func WithXOnly() Option { return func(o *options) { o.xOnly = true } }

// WithMaxBytes fails reads of entropy sources longer than n bytes. It has no
// effect on FromBytes.
func WithMaxBytes(n int64) Option { return func(o *options) { o.maxBytes = n } }

func collect(opts []Option) (o options) {
	for _, opt := range opts {
		opt(&o)
	}
	return
}

// FromSeed generates and encodes the key pair for a seed.
func FromSeed(sd seed.T, opts ...Option) (r *Result, err er) {
	o := collect(opts)
	var p *keys.Pair
	if p, err = keys.Generate(sd); chk.D(err) {
		return
	}
	defer p.Zero()
	var nsec, npub by
	if nsec, npub, err = bech32encoding.PairToStrings(p, o.xOnly); chk.D(err) {
		return
	}
	r = &Result{Nsec: st(nsec), Npub: st(npub), Sec: p.Sec(), Pub: p.Pub()}
	if o.xOnly {
		r.Pub = p.XOnly()
	}
	return
}

// FromBytes derives the key pair for the given entropy, which may be empty.
func FromBytes(data by, opts ...Option) (r *Result, err er) {
	return FromSeed(seed.Derive(data), opts...)
}

// FromReader derives the key pair for everything read from r.
func FromReader(r io.Reader, opts ...Option) (res *Result, err er) {
	var sd seed.T
	if sd, err = seed.FromReader(r); chk.D(err) {
		return
	}
	return FromSeed(sd, opts...)
}

// FromFile derives the key pair for the content of the file at path, or of
// standard input if path is entropy.Stdin.
func FromFile(path st, opts ...Option) (r *Result, err er) {
	o := collect(opts)
	var rc io.ReadCloser
	if rc, err = entropy.Open(path); chk.D(err) {
		return
	}
	defer rc.Close()
	return FromReader(entropy.Limit(rc, path, o.maxBytes), opts...)
}

// Verify checks that nsec and npub are well formed and that the npub holds
// the public key of the nsec, in either compressed or x-only form.
func Verify(nsec, npub st) (err er) {
	var sec, pub by
	if sec, err = bech32encoding.NsecToSecret(nsec); chk.D(err) {
		return
	}
	if pub, err = bech32encoding.NpubToPublic(npub); chk.D(err) {
		return
	}
	var p *keys.Pair
	if p, err = keys.FromSecret(sec); chk.D(err) {
		return
	}
	defer p.Zero()
	if !p.Matches(pub) {
		err = errorf.D("%w: %s is not the public key of the nsec", ErrMismatch, npub)
	}
	return
}
