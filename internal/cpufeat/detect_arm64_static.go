//go:build arm64 && no_runtime_cpu_detection

package cpufeat

// detect is collapsed to a compile-time constant when the
// no_runtime_cpu_detection build tag is set.
func detect() Tier {
	return TierNEON
}
