//go:build !amd64 && !arm64

package cpufeat

// detect falls back to the scalar tier on architectures with no wide
// kernel backend in this module.
func detect() Tier {
	return TierScalar
}
