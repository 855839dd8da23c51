// Package nostrkeygen derives nostr key pairs from file entropy. The work is
// done in the keygen package and its dependencies; this package only carries
// the release version.
package nostrkeygen

// Version is the release of this module, printed by the command line tools.
const Version = "v0.1.0"
