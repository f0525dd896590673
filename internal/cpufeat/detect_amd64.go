//go:build amd64 && !no_runtime_cpu_detection

package cpufeat

import "golang.org/x/sys/cpu"

// detect probes the host's x86 feature bits at runtime. Preference order
// matches spec.md §4.8: AVX-512BW, then AVX2, then SSE2, then scalar.
func detect() Tier {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		return TierAVX512
	case cpu.X86.HasAVX2:
		return TierAVX2
	case cpu.X86.HasSSE2:
		return TierSSE2
	default:
		return TierScalar
	}
}
