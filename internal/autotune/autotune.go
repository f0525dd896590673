// Package autotune implements the settings-agnostic brute-force search
// engine behind every BCn variant's auto-tuner (spec.md §4.6, C6). It is
// generic over the settings type S so bc1, bc2, and bc3 can each supply
// their own Settings struct and test-order table while sharing one
// implementation of the scratch-buffer lifecycle, the minimum-tracking
// loop, and the "re-transform only if the winner wasn't last" rule.
package autotune

import (
	"errors"
	"fmt"

	"github.com/blockforge/dxtlt/estimator"
	"github.com/blockforge/dxtlt/internal/scratch"
)

// ErrAllocationFailed is the sentinel for a failed scratch allocation
// (spec.md §4.6's AllocationFailed). Run never returns it: Go's make
// does not report allocation failure as an error, and a failing
// MaxCompressedSize call is returned as a SizeEstimationError.
var ErrAllocationFailed = errors.New("autotune: scratch allocation failed")

// SizeEstimationError wraps an error returned by a caller-supplied
// Estimator (spec.md §4.6's parametric SizeEstimationError(E)).
type SizeEstimationError[E error] struct {
	Err E
}

func (e *SizeEstimationError[E]) Error() string {
	return fmt.Sprintf("autotune: size estimation failed: %v", e.Err)
}

func (e *SizeEstimationError[E]) Unwrap() error {
	return e.Err
}

// Region is one named portion of a transformed output buffer that the
// estimator should score on a given trial. BC1/BC2 report one Region
// (the colour-endpoint section); BC3 reports two (alpha endpoints, colour
// endpoints), whose estimates are summed (spec.md §4.6 step 3c).
type Region struct {
	Bytes    []byte
	DataType estimator.DataType
}

// Config parameterizes one auto-tune run.
type Config[S comparable] struct {
	Input, Output []byte
	BlockCount    int

	// Candidates is the fixed test-order table for the active mode
	// (fast or comprehensive), ordered so the statistically modal
	// winner is last (spec.md §4.6 step 2).
	Candidates []S

	// Transform applies settings s, writing into output.
	Transform func(input, output []byte, s S) error

	// Regions returns the portions of output to estimate for the trial
	// that just ran under settings s.
	Regions func(output []byte, blockCount int, s S) []Region

	// MaxRegionLen returns the largest single region length any
	// candidate in Candidates will ever produce, used to size the
	// shared scratch buffer once (spec.md §4.6 step 1).
	MaxRegionLen func(blockCount int) int

	Estimator estimator.Estimator
}

// Run executes the brute-force search described by cfg and returns the
// settings value that minimized the estimator's predicted size. On
// return, Output holds the result of transforming Input under the
// returned settings (testable property 7, spec.md §8).
func Run[S comparable, E error](cfg Config[S], estErr func(error) E) (S, error) {
	var zero S
	if len(cfg.Candidates) == 0 {
		return zero, fmt.Errorf("autotune: candidate test order is empty")
	}

	maxLen := cfg.MaxRegionLen(cfg.BlockCount)
	scratchSize, err := cfg.Estimator.MaxCompressedSize(maxLen)
	if err != nil {
		return zero, &SizeEstimationError[E]{Err: estErr(err)}
	}
	scratchBuf := scratch.New(scratchSize).Bytes()

	var (
		best      S
		bestSize  = int64(-1)
		lastTested S
		haveLast  bool
	)

	for _, candidate := range cfg.Candidates {
		if err := cfg.Transform(cfg.Input, cfg.Output, candidate); err != nil {
			return zero, err
		}
		lastTested = candidate
		haveLast = true

		var total int64
		for _, region := range cfg.Regions(cfg.Output, cfg.BlockCount, candidate) {
			size, err := cfg.Estimator.EstimateCompressedSize(region.Bytes, region.DataType, scratchBuf)
			if err != nil {
				return zero, &SizeEstimationError[E]{Err: estErr(err)}
			}
			total += int64(size)
		}

		// <= lets a later candidate win a tie, so the modal winner placed
		// last in Candidates keeps ties and needs no final re-transform.
		if bestSize < 0 || total <= bestSize {
			bestSize = total
			best = candidate
		}
	}

	if haveLast && best != lastTested {
		if err := cfg.Transform(cfg.Input, cfg.Output, best); err != nil {
			return zero, err
		}
	}
	return best, nil
}
