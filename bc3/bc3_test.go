package bc3

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/blockforge/dxtlt/estimator/statistical"
)

func allSettings() []Settings {
	var out []Settings
	for _, mode := range []DecorrelationMode{None, Variant1, Variant2, Variant3} {
		for _, sc := range []bool{false, true} {
			for _, sa := range []bool{false, true} {
				out = append(out, Settings{DecorrelationMode: mode, SplitColourEndpoints: sc, SplitAlphaEndpoints: sa})
			}
		}
	}
	return out
}

func makeBlocks(n int) []byte {
	buf := make([]byte, n*blockSize)
	for i := range buf {
		buf[i] = byte(i*61 + 3)
	}
	return buf
}

func TestRoundtrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 64, 513} {
		input := makeBlocks(n)
		for _, s := range allSettings() {
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
	f := func(raw []byte, modeSel uint8, splitColour, splitAlpha bool) bool {
		n := len(raw) / blockSize
		input := raw[:n*blockSize]
		s := Settings{
			DecorrelationMode:    DecorrelationMode(modeSel % 4),
			SplitColourEndpoints: splitColour,
			SplitAlphaEndpoints:  splitAlpha,
		}
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

// TestAllZerosFixedPoint covers the all-zero-bytes scenario: every
// decorrelation/split combination must map all-zero blocks to an
// all-zero output.
func TestAllZerosFixedPoint(t *testing.T) {
	input := make([]byte, 4*blockSize)
	for _, s := range allSettings() {
		out := make([]byte, len(input))
		if err := TransformWithSettings(input, out, s); err != nil {
			t.Fatal(err)
		}
		for _, b := range out {
			if b != 0 {
				t.Fatalf("settings=%+v: expected all-zero output, got non-zero byte", s)
			}
		}
	}
}

func TestAlphaIndicesAndColourIndicesUntouched(t *testing.T) {
	input := makeBlocks(6)
	for _, s := range allSettings() {
		out := make([]byte, len(input))
		if err := TransformWithSettings(input, out, s); err != nil {
			t.Fatal(err)
		}
		off := offsetsFor(6)
		alphaIdx := out[off.alphaIdx : off.alphaIdx+6*alphaIndexSize]
		colourIdx := out[off.colourIdx : off.colourIdx+6*colourIndexSize]
		for i := 0; i < 6; i++ {
			b := i * blockSize
			wantAlphaIdx := input[b+alphaEndpointsLen : b+alphaBlockSize]
			if !bytes.Equal(alphaIdx[i*alphaIndexSize:i*alphaIndexSize+alphaIndexSize], wantAlphaIdx) {
				t.Fatalf("settings=%+v block %d: alpha indices mismatch", s, i)
			}
			wantColourIdx := input[b+alphaBlockSize+colourPair : b+blockSize]
			if !bytes.Equal(colourIdx[i*colourIndexSize:i*colourIndexSize+colourIndexSize], wantColourIdx) {
				t.Fatalf("settings=%+v block %d: colour indices mismatch", s, i)
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
	input := makeBlocks(80)
	est := statistical.New()

	out := make([]byte, len(input))
	chosen, err := TransformAuto(input, out, est, true)
	require.NoError(t, err)

	score := func(buf []byte, s Settings) int {
		off := offsetsFor(80)
		a, err := est.EstimateCompressedSize(buf[off.alphaEnd:off.alphaEnd+80*alphaEndpointsLen], 0, nil)
		require.NoError(t, err)
		c, err := est.EstimateCompressedSize(buf[off.colourEnd:off.colourEnd+80*colourPair], 0, nil)
		require.NoError(t, err)
		return a + c
	}

	chosenOut := make([]byte, len(input))
	require.NoError(t, TransformWithSettings(input, chosenOut, chosen))
	chosenSize := score(chosenOut, chosen)

	for _, s := range comprehensiveTestOrder {
		candOut := make([]byte, len(input))
		require.NoError(t, TransformWithSettings(input, candOut, s))
		require.GreaterOrEqualf(t, score(candOut, s), chosenSize, "candidate %+v scored better than chosen %+v", s, chosen)
	}
}

func TestAutoTuneRoundtrips(t *testing.T) {
	input := makeBlocks(29)
	est := statistical.New()
	out := make([]byte, len(input))
	chosen, err := TransformAuto(input, out, est, true)
	require.NoError(t, err)
	back := make([]byte, len(input))
	require.NoError(t, UntransformWithSettings(out, back, chosen))
	require.True(t, bytes.Equal(back, input), "auto-tuned output does not untransform back to input")
}

func TestSettingsBuilder(t *testing.T) {
	s := NewSettingsBuilder().Decorrelation(Variant3).SplitColourEndpoints(true).SplitAlphaEndpoints(true).Build()
	if s.DecorrelationMode != Variant3 || !s.SplitColourEndpoints || !s.SplitAlphaEndpoints {
		t.Fatalf("got %+v", s)
	}
}
