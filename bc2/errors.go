package bc2

import (
	"errors"
	"fmt"

	"github.com/blockforge/dxtlt/internal/autotune"
)

var (
	ErrInvalidLength  = errors.New("bc2: invalid input length")
	ErrOutputTooSmall = errors.New("bc2: output buffer too small")
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
// estimator (spec.md §4.6's SizeEstimationError(E)).
type SizeEstimationError[E error] = autotune.SizeEstimationError[E]
