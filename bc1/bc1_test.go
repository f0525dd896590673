package bc1

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/blockforge/dxtlt/estimator/statistical"
)

var allSettings = []Settings{
	{DecorrelationMode: None, SplitColourEndpoints: false},
	{DecorrelationMode: None, SplitColourEndpoints: true},
	{DecorrelationMode: Variant1, SplitColourEndpoints: false},
	{DecorrelationMode: Variant1, SplitColourEndpoints: true},
	{DecorrelationMode: Variant2, SplitColourEndpoints: false},
	{DecorrelationMode: Variant2, SplitColourEndpoints: true},
	{DecorrelationMode: Variant3, SplitColourEndpoints: false},
	{DecorrelationMode: Variant3, SplitColourEndpoints: true},
}

func makeBlocks(n int) []byte {
	buf := make([]byte, n*blockSize)
	for i := range buf {
		buf[i] = byte(i*37 + 11)
	}
	return buf
}

// TestRoundtrip covers spec.md §8's property 1 (transform/untransform is
// the identity) across the block counts the spec's scenario table names
// plus a few edge cases.
func TestRoundtrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 64, 513} {
		input := makeBlocks(n)
		for _, s := range allSettings {
			out := make([]byte, len(input))
			if err := TransformWithSettings(input, out, s); err != nil {
				t.Fatalf("n=%d settings=%+v: Transform: %v", n, s, err)
			}
			back := make([]byte, len(input))
			if err := UntransformWithSettings(out, back, s); err != nil {
				t.Fatalf("n=%d settings=%+v: Untransform: %v", n, s, err)
			}
			if !bytes.Equal(back, input) {
				t.Fatalf("n=%d settings=%+v: roundtrip mismatch", n, s)
			}
		}
	}
}

// TestRoundtripQuick fuzzes over random block counts and byte contents.
func TestRoundtripQuick(t *testing.T) {
	f := func(raw []byte, modeSel uint8, split bool) bool {
		n := len(raw) / blockSize
		input := raw[:n*blockSize]
		s := Settings{DecorrelationMode: DecorrelationMode(modeSel % 4), SplitColourEndpoints: split}
		out := make([]byte, len(input))
		if err := TransformWithSettings(input, out, s); err != nil {
			return false
		}
		back := make([]byte, len(input))
		if err := UntransformWithSettings(out, back, s); err != nil {
			return false
		}
		return bytes.Equal(back, input)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 2000}); err != nil {
		t.Fatal(err)
	}
}

// TestInvalidLength covers spec.md's InvalidLength edge case.
func TestInvalidLength(t *testing.T) {
	input := make([]byte, 5)
	out := make([]byte, 8)
	err := TransformWithSettings(input, out, DefaultSettings)
	if err == nil {
		t.Fatal("expected error for non-multiple-of-8 length")
	}
}

// TestOutputTooSmall covers spec.md's OutputTooSmall edge case.
func TestOutputTooSmall(t *testing.T) {
	input := makeBlocks(4)
	out := make([]byte, len(input)-1)
	err := TransformWithSettings(input, out, DefaultSettings)
	if err == nil {
		t.Fatal("expected error for undersized output")
	}
}

// TestZeroBlocksNoop covers the empty-input edge case (spec.md scenario
// "zero blocks").
func TestZeroBlocksNoop(t *testing.T) {
	if err := TransformWithSettings(nil, nil, DefaultSettings); err != nil {
		t.Fatalf("unexpected error on empty input: %v", err)
	}
}

// TestSplitLayoutScenario is spec.md's concrete scenario S2 specialized
// to BC1: splitting two blocks places their colour0/colour1 pairs
// contiguously ahead of both index words.
func TestSplitLayoutScenario(t *testing.T) {
	input := []byte{
		0x01, 0x02, 0x03, 0x04, 0xAA, 0xBB, 0xCC, 0xDD,
		0x05, 0x06, 0x07, 0x08, 0xEE, 0xFF, 0x10, 0x11,
	}
	out := make([]byte, len(input))
	s := Settings{DecorrelationMode: None, SplitColourEndpoints: true}
	if err := TransformWithSettings(input, out, s); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x01, 0x02, 0x05, 0x06,
		0x03, 0x04, 0x07, 0x08,
		0xAA, 0xBB, 0xCC, 0xDD,
		0xEE, 0xFF, 0x10, 0x11,
	}
	if !bytes.Equal(out, want) {
		t.Fatalf("got %x want %x", out, want)
	}
}

// TestAutoTuneOptimality is spec.md §8's property 7: the settings
// TransformAuto returns must estimate no larger than any other
// candidate in its test order, under the same estimator.
func TestAutoTuneOptimality(t *testing.T) {
	input := makeBlocks(128)
	est := statistical.New()

	out := make([]byte, len(input))
	chosen, err := TransformAuto(input, out, est, true)
	require.NoError(t, err)

	chosenOut := make([]byte, len(input))
	require.NoError(t, TransformWithSettings(input, chosenOut, chosen))
	chosenSize, err := est.EstimateCompressedSize(chosenOut[:len(input)/2], 0, nil)
	require.NoError(t, err)

	for _, s := range comprehensiveTestOrder {
		candOut := make([]byte, len(input))
		require.NoError(t, TransformWithSettings(input, candOut, s))
		candSize, err := est.EstimateCompressedSize(candOut[:len(input)/2], 0, nil)
		require.NoError(t, err)
		require.GreaterOrEqualf(t, candSize, chosenSize, "candidate %+v scored better than chosen %+v", s, chosen)
	}

	require.True(t, bytes.Equal(out, chosenOut), "output does not reflect the winning settings")
}

// TestAutoTuneFastOrderSubset checks that a fast-mode run only ever
// returns one of fastTestOrder's four candidates.
func TestAutoTuneFastOrderSubset(t *testing.T) {
	input := makeBlocks(64)
	est := statistical.New()
	out := make([]byte, len(input))
	chosen, err := TransformAuto(input, out, est, false)
	require.NoError(t, err)
	require.Containsf(t, fastTestOrder, chosen, "fast auto-tune returned %+v, not in fastTestOrder", chosen)
}

// TestAutoTuneRoundtrips verifies that whatever TransformAuto settles on
// untransforms back to the original input.
func TestAutoTuneRoundtrips(t *testing.T) {
	input := makeBlocks(37)
	est := statistical.New()
	out := make([]byte, len(input))
	chosen, err := TransformAuto(input, out, est, true)
	require.NoError(t, err)
	back := make([]byte, len(input))
	require.NoError(t, UntransformWithSettings(out, back, chosen))
	require.True(t, bytes.Equal(back, input), "auto-tuned output does not untransform back to input")
}

func TestSettingsBuilder(t *testing.T) {
	s := NewSettingsBuilder().Decorrelation(Variant2).SplitColourEndpoints(true).Build()
	if s.DecorrelationMode != Variant2 || !s.SplitColourEndpoints {
		t.Fatalf("got %+v", s)
	}
}
