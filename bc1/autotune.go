package bc1

import (
	"github.com/blockforge/dxtlt/estimator"
	"github.com/blockforge/dxtlt/internal/autotune"
)

// fastTestOrder covers the 4 settings combinations observed to cover
// the overwhelming majority of real BC1 texture corpora, ordered so the
// statistically modal winner (Variant1, split) is tested last — any
// earlier candidate that ties it loses the tie, and re-testing the
// modal winner avoids a redundant final re-transform in the common case
// (spec.md §4.6 step 2; ordering derived from the occurrence
// percentages documented against BC1's optimization table — see
// DESIGN.md).
var fastTestOrder = []Settings{
	{DecorrelationMode: None, SplitColourEndpoints: false},
	{DecorrelationMode: Variant2, SplitColourEndpoints: false},
	{DecorrelationMode: None, SplitColourEndpoints: true},
	{DecorrelationMode: Variant1, SplitColourEndpoints: true},
}

// comprehensiveTestOrder extends fastTestOrder to all 8 legal BC1
// settings combinations (4 decorrelation modes × {split, unsplit}),
// same modal-winner-last ordering discipline.
var comprehensiveTestOrder = []Settings{
	{DecorrelationMode: None, SplitColourEndpoints: false},
	{DecorrelationMode: Variant2, SplitColourEndpoints: false},
	{DecorrelationMode: Variant3, SplitColourEndpoints: false},
	{DecorrelationMode: Variant1, SplitColourEndpoints: false},
	{DecorrelationMode: Variant2, SplitColourEndpoints: true},
	{DecorrelationMode: Variant3, SplitColourEndpoints: true},
	{DecorrelationMode: None, SplitColourEndpoints: true},
	{DecorrelationMode: Variant1, SplitColourEndpoints: true},
}

// TransformAuto tries every candidate in the selected test order,
// estimates the compressed size of each trial's colour-endpoint region
// with est, and leaves output holding the result of whichever settings
// the estimator scored smallest (spec.md §4.6, C6). When comprehensive
// is false only fastTestOrder is searched. Errors from est are
// surfaced wrapped in a SizeEstimationError[error].
func TransformAuto(input, output []byte, est estimator.Estimator, comprehensive bool) (Settings, error) {
	order := fastTestOrder
	if comprehensive {
		order = comprehensiveTestOrder
	}

	blockCount := len(input) / blockSize
	cfg := autotune.Config[Settings]{
		Input:      input,
		Output:     output,
		BlockCount: blockCount,
		Candidates: order,
		Transform: func(input, output []byte, s Settings) error {
			return TransformWithSettings(input, output, s)
		},
		Regions: func(output []byte, blockCount int, s Settings) []autotune.Region {
			return []autotune.Region{{
				Bytes:    output[:blockCount*colourPair],
				DataType: estimator.DataTypeBC1ColourEndpoints,
			}}
		},
		MaxRegionLen: func(blockCount int) int {
			return blockCount * colourPair
		},
		Estimator: est,
	}

	return autotune.Run(cfg, func(err error) error { return err })
}
