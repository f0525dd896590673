package bc2

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
		buf[i] = byte(i*53 + 7)
	}
	return buf
}

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

func TestAlphaUntouched(t *testing.T) {
	input := makeBlocks(5)
	for _, s := range allSettings {
		out := make([]byte, len(input))
		if err := TransformWithSettings(input, out, s); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 5; i++ {
			wantAlpha := input[i*blockSize : i*blockSize+alphaSize]
			gotAlpha := out[i*alphaSize : i*alphaSize+alphaSize]
			if !bytes.Equal(wantAlpha, gotAlpha) {
				t.Fatalf("settings=%+v block %d: alpha bytes moved or modified", s, i)
			}
		}
	}
}

func TestInvalidLength(t *testing.T) {
	input := make([]byte, 5)
	out := make([]byte, 16)
	if err := TransformWithSettings(input, out, DefaultSettings); err == nil {
		t.Fatal("expected error for non-multiple-of-16 length")
	}
}

func TestOutputTooSmall(t *testing.T) {
	input := makeBlocks(4)
	out := make([]byte, len(input)-1)
	if err := TransformWithSettings(input, out, DefaultSettings); err == nil {
		t.Fatal("expected error for undersized output")
	}
}

func TestAutoTuneOptimality(t *testing.T) {
	input := makeBlocks(96)
	est := statistical.New()

	out := make([]byte, len(input))
	chosen, err := TransformAuto(input, out, est, true)
	require.NoError(t, err)

	alphaLen := len(input) / 4 * 2 // n*alphaSize == n*8 == len/2
	colourLen := len(input) / 4    // n*colourPair == n*4 == len/4

	chosenOut := make([]byte, len(input))
	require.NoError(t, TransformWithSettings(input, chosenOut, chosen))
	chosenSize, err := est.EstimateCompressedSize(chosenOut[alphaLen:alphaLen+colourLen], 0, nil)
	require.NoError(t, err)

	for _, s := range comprehensiveTestOrder {
		candOut := make([]byte, len(input))
		require.NoError(t, TransformWithSettings(input, candOut, s))
		candSize, err := est.EstimateCompressedSize(candOut[alphaLen:alphaLen+colourLen], 0, nil)
		require.NoError(t, err)
		require.GreaterOrEqualf(t, candSize, chosenSize, "candidate %+v scored better than chosen %+v", s, chosen)
	}
}

func TestAutoTuneRoundtrips(t *testing.T) {
	input := makeBlocks(41)
	est := statistical.New()
	out := make([]byte, len(input))
	chosen, err := TransformAuto(input, out, est, true)
	require.NoError(t, err)
	back := make([]byte, len(input))
	require.NoError(t, UntransformWithSettings(out, back, chosen))
	require.True(t, bytes.Equal(back, input), "auto-tuned output does not untransform back to input")
}
