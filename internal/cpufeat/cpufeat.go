// Package cpufeat provides cached, process-wide CPU feature detection
// used to pick the widest safe kernel tier for the current host. It
// mirrors the dispatch shape of a build-tag-gated init()-time override
// table: each dispatch-table package in this module calls Detect() once
// and latches a function pointer, exactly as the teacher's
// internal/dsp/cpuid_amd64.go latches hasAVX2 before dsp.go's init runs.
package cpufeat

import "sync"

// Tier names a kernel-width tier. Higher tiers are only selected when
// the host (and build) support them; TierScalar is always safe.
type Tier int

const (
	TierScalar Tier = iota
	TierSSE2
	TierAVX2
	TierAVX512
	TierNEON
)

// String implements fmt.Stringer for log and CLI output.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierSSE2:
		return "sse2"
	case TierAVX2:
		return "avx2"
	case TierAVX512:
		return "avx512"
	case TierNEON:
		return "neon"
	default:
		return "unknown"
	}
}

var (
	once     sync.Once
	detected Tier
)

// Detect returns the best kernel tier available on the current host,
// computed once and cached for the lifetime of the process.
func Detect() Tier {
	once.Do(func() {
		detected = detect()
	})
	return detected
}
