// Package sha256 provides the SHA-256 hash used for seed derivation, backed by
// github.com/minio/sha256-simd which picks the SHA-NI, AVX-512 or ARM SHA2
// code paths where the CPU has them.
package sha256
