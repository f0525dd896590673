package bc2

import (
	"github.com/blockforge/dxtlt/estimator"
	"github.com/blockforge/dxtlt/internal/autotune"
)

// fastTestOrder and comprehensiveTestOrder mirror bc1's tables: BC2
// shares BC1's colour-endpoint layout exactly (spec.md §3), so the same
// relative candidate ordering applies, with the modal winner tested
// last (see DESIGN.md's BC2 auto-tune region decision).
var fastTestOrder = []Settings{
	{DecorrelationMode: None, SplitColourEndpoints: false},
	{DecorrelationMode: Variant2, SplitColourEndpoints: false},
	{DecorrelationMode: None, SplitColourEndpoints: true},
	{DecorrelationMode: Variant1, SplitColourEndpoints: true},
}

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

// TransformAuto searches the selected test order and leaves output
// holding whichever settings the estimator scores smallest over the
// colour-endpoint region (n*4 bytes — one quarter of the 16-byte BC2
// block, the alpha section is never part of the estimated region since
// it is never transformed).
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
			alphaLen := blockCount * alphaSize
			return []autotune.Region{{
				Bytes:    output[alphaLen : alphaLen+blockCount*colourPair],
				DataType: estimator.DataTypeBC2ColourEndpoints,
			}}
		},
		MaxRegionLen: func(blockCount int) int {
			return blockCount * colourPair
		},
		Estimator: est,
	}

	return autotune.Run(cfg, func(err error) error { return err })
}
