package bc3

import (
	"github.com/blockforge/dxtlt/estimator"
	"github.com/blockforge/dxtlt/internal/autotune"
)

// fastTestOrder covers BC3's most common combinations. BC3 has no
// documented occurrence-percentage table in the material this library's
// auto-tuner logic is grounded on (only "[TODO: BC3-specific analysis]"
// — see DESIGN.md's Open Question decision); this order is built by
// analogy to BC1/BC2's table, varying colour settings the same way and
// holding alpha-endpoint splitting on after the all-off baseline entry,
// since alpha splitting is cheap
// and rarely regresses entropy coding of the endpoint byte pair.
var fastTestOrder = []Settings{
	{DecorrelationMode: None, SplitColourEndpoints: false, SplitAlphaEndpoints: false},
	{DecorrelationMode: Variant2, SplitColourEndpoints: false, SplitAlphaEndpoints: true},
	{DecorrelationMode: None, SplitColourEndpoints: true, SplitAlphaEndpoints: true},
	{DecorrelationMode: Variant1, SplitColourEndpoints: true, SplitAlphaEndpoints: true},
}

// comprehensiveTestOrder enumerates all 16 legal BC3 settings
// combinations, modal-winner-last per the same convention as bc1/bc2.
var comprehensiveTestOrder = []Settings{
	{DecorrelationMode: None, SplitColourEndpoints: false, SplitAlphaEndpoints: false},
	{DecorrelationMode: None, SplitColourEndpoints: false, SplitAlphaEndpoints: true},
	{DecorrelationMode: Variant2, SplitColourEndpoints: false, SplitAlphaEndpoints: false},
	{DecorrelationMode: Variant2, SplitColourEndpoints: false, SplitAlphaEndpoints: true},
	{DecorrelationMode: Variant3, SplitColourEndpoints: false, SplitAlphaEndpoints: false},
	{DecorrelationMode: Variant3, SplitColourEndpoints: false, SplitAlphaEndpoints: true},
	{DecorrelationMode: Variant1, SplitColourEndpoints: false, SplitAlphaEndpoints: false},
	{DecorrelationMode: Variant1, SplitColourEndpoints: false, SplitAlphaEndpoints: true},
	{DecorrelationMode: None, SplitColourEndpoints: true, SplitAlphaEndpoints: false},
	{DecorrelationMode: Variant2, SplitColourEndpoints: true, SplitAlphaEndpoints: false},
	{DecorrelationMode: Variant3, SplitColourEndpoints: true, SplitAlphaEndpoints: false},
	{DecorrelationMode: Variant2, SplitColourEndpoints: true, SplitAlphaEndpoints: true},
	{DecorrelationMode: Variant3, SplitColourEndpoints: true, SplitAlphaEndpoints: true},
	{DecorrelationMode: None, SplitColourEndpoints: true, SplitAlphaEndpoints: true},
	{DecorrelationMode: Variant1, SplitColourEndpoints: true, SplitAlphaEndpoints: false},
	{DecorrelationMode: Variant1, SplitColourEndpoints: true, SplitAlphaEndpoints: true},
}

// TransformAuto searches the selected test order, scoring each trial by
// summing the estimator's prediction over both endpoint regions —
// alpha endpoints and colour endpoints — the two fields decorrelation
// and splitting can affect (spec.md §4.6 step 3c: "for formats with
// multiple transformable regions, ... sum their estimated sizes").
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
			off := offsetsFor(blockCount)
			return []autotune.Region{
				{
					Bytes:    output[off.alphaEnd : off.alphaEnd+blockCount*alphaEndpointsLen],
					DataType: estimator.DataTypeBC3AlphaEndpoints,
				},
				{
					Bytes:    output[off.colourEnd : off.colourEnd+blockCount*colourPair],
					DataType: estimator.DataTypeBC3ColourEndpoints,
				},
			}
		},
		MaxRegionLen: func(blockCount int) int {
			return blockCount * colourPair // colour endpoints is the larger of the two regions
		},
		Estimator: est,
	}

	return autotune.Run(cfg, func(err error) error { return err })
}
