// Package bech32 implements the BIP-173 bech32 encoding: a human-readable
// part, a separator, base32 data and a six character BCH checksum that
// detects up to four substitution errors.
//
// Encode and Decode work on 5 bit values; ConvertBits regroups between 8 bit
// bytes and those values. EncodeFromBase256 and DecodeToBase256 do both steps
// at once.
package bech32
