//go:build arm64 && !no_runtime_cpu_detection

package cpufeat

import "golang.org/x/sys/cpu"

// detect reports TierNEON on AArch64: NEON is mandatory in the AArch64
// base architecture, so no further runtime probing is required (unlike
// x86 where SSE2/AVX2/AVX512 are each optional extensions).
func detect() Tier {
	_ = cpu.ARM64.HasASIMD // always true on a Go-supported arm64 host; documents the baseline.
	return TierNEON
}
