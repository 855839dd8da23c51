package sha256

import (
	"hash"

	"github.com/klauspost/cpuid/v2"
	simd "github.com/minio/sha256-simd"

	"nostrkeygen.lol/log"
)

const (
	Size      = simd.Size
	BlockSize = simd.BlockSize
)

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size]byte { return simd.Sum256(data) }

// New returns a streaming SHA-256 hash.Hash.
func New() hash.Hash { return simd.New() }

// Acceleration names the instruction set extension available for hashing on
// this CPU, or "generic" if none is.
func Acceleration() (name string) {
	switch {
	case cpuid.CPU.Supports(cpuid.SHA, cpuid.SSSE3, cpuid.SSE4):
		name = "sha-ni"
	case cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ, cpuid.AVX512BW, cpuid.AVX512VL):
		name = "avx512"
	case cpuid.CPU.Supports(cpuid.SHA2):
		name = "arm-sha2"
	default:
		name = "generic"
	}
	return
}

func init() {
	log.T.C(func() string {
		return "sha256 on " + cpuid.CPU.BrandName + " using " + Acceleration()
	})
}
