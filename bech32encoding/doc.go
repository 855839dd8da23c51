// Package bech32encoding converts nostr key material to and from the NIP-19
// style bech32 strings that carry a human-readable prefix, nsec for secret
// keys and npub for public keys.
package bech32encoding
