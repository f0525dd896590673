package bc1

import (
	"errors"
	"fmt"

	"github.com/blockforge/dxtlt/internal/autotune"
)

// Sentinel errors returned by TransformWithSettings / UntransformWithSettings,
// matching the teacher's style of package-level sentinel errors plus
// fmt.Errorf("%w: ...") wrapping for context (see webp.go's
// ErrUnsupported / ErrNoFrames).
var (
	ErrInvalidLength  = errors.New("bc1: invalid input length")
	ErrOutputTooSmall = errors.New("bc1: output buffer too small")
)

// ErrAllocationFailed re-exports the auto-tuner's scratch-allocation
// sentinel. TransformAuto does not return it: an estimator error while
// sizing the scratch buffer is returned as a SizeEstimationError.
var ErrAllocationFailed = autotune.ErrAllocationFailed

func invalidLengthError(n int) error {
	return fmt.Errorf("%w: %d is not a multiple of %d bytes", ErrInvalidLength, n, blockSize)
}

func outputTooSmallError(need, got int) error {
	return fmt.Errorf("%w: need %d bytes, got %d", ErrOutputTooSmall, need, got)
}

// SizeEstimationError wraps an error returned by a caller-supplied
// estimator (spec.md §4.6's SizeEstimationError(E)). E is the
// estimator's own error type, carried through generically rather than
// via a parametric enum variant.
type SizeEstimationError[E error] = autotune.SizeEstimationError[E]
