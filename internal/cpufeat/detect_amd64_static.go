//go:build amd64 && no_runtime_cpu_detection

package cpufeat

// detect is collapsed to a compile-time constant when the
// no_runtime_cpu_detection build tag is set (spec.md §4.8), avoiding the
// runtime CPUID probe entirely. AVX2 is the safe floor for amd64 builds
// that opt into static dispatch.
func detect() Tier {
	return TierAVX2
}
