package endpointsplit

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestSplitUnsplitRoundtrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 64, 513} {
		n := n
		src := make([]byte, n*4)
		rand.New(rand.NewSource(int64(n))).Read(src)

		c0 := make([]byte, n*2)
		c1 := make([]byte, n*2)
		Split(src, c0, c1)

		out := make([]byte, n*4)
		Unsplit(c0, c1, out)

		if !bytes.Equal(out, src) {
			t.Fatalf("n=%d: roundtrip mismatch", n)
		}
	}
}

func TestSplitLayout(t *testing.T) {
	src := []byte{0x00, 0xF8, 0x00, 0x00}
	c0 := make([]byte, 2)
	c1 := make([]byte, 2)
	Split(src, c0, c1)
	if !bytes.Equal(c0, []byte{0x00, 0xF8}) {
		t.Fatalf("color0 = %x, want 00 f8", c0)
	}
	if !bytes.Equal(c1, []byte{0x00, 0x00}) {
		t.Fatalf("color1 = %x, want 00 00", c1)
	}
}
