// Package endpointsplit implements the "split endpoints" primitive
// (spec.md §4.2 / C2): given a stream of (color0, color1) 32-bit pairs,
// produce two parallel 16-bit streams [all color0][all color1], and the
// inverse interleave.
package endpointsplit

import (
	"encoding/binary"

	"github.com/blockforge/dxtlt/internal/cpufeat"
)

// Split separates a stream of interleaved (color0:u16, color1:u16) pairs
// into two contiguous streams. in must have a length that is a multiple
// of 4 bytes; color0Out and color1Out must each be len(in)/4*2 bytes.
func Split(in, color0Out, color1Out []byte) {
	splitImpl(in, color0Out, color1Out)
}

// Unsplit reverses Split: it interleaves color0In and color1In (each a
// stream of u16 values) back into (color0, color1) pairs in out.
func Unsplit(color0In, color1In, out []byte) {
	unsplitImpl(color0In, color1In, out)
}

var (
	splitImpl   func(in, color0Out, color1Out []byte)
	unsplitImpl func(color0In, color1In, out []byte)
)

func init() {
	tile := tileSizeFor(cpufeat.Detect())
	splitImpl = makeSplit(tile)
	unsplitImpl = makeUnsplit(tile)
}

func tileSizeFor(tier cpufeat.Tier) int {
	switch tier {
	case cpufeat.TierAVX512:
		return 16
	case cpufeat.TierAVX2:
		return 8
	case cpufeat.TierSSE2, cpufeat.TierNEON:
		return 4
	default:
		return 1
	}
}

func makeSplit(tile int) func(in, color0Out, color1Out []byte) {
	return func(in, color0Out, color1Out []byte) {
		n := len(in) / 4
		i := 0
		for ; i+tile <= n; i += tile {
			splitRange(in, color0Out, color1Out, i, i+tile)
		}
		splitRange(in, color0Out, color1Out, i, n)
	}
}

func splitRange(in, color0Out, color1Out []byte, start, end int) {
	for p := start; p < end; p++ {
		base := p * 4
		c0 := binary.LittleEndian.Uint16(in[base:])
		c1 := binary.LittleEndian.Uint16(in[base+2:])
		binary.LittleEndian.PutUint16(color0Out[p*2:], c0)
		binary.LittleEndian.PutUint16(color1Out[p*2:], c1)
	}
}

func makeUnsplit(tile int) func(color0In, color1In, out []byte) {
	return func(color0In, color1In, out []byte) {
		n := len(color0In) / 2
		i := 0
		for ; i+tile <= n; i += tile {
			unsplitRange(color0In, color1In, out, i, i+tile)
		}
		unsplitRange(color0In, color1In, out, i, n)
	}
}

func unsplitRange(color0In, color1In, out []byte, start, end int) {
	for p := start; p < end; p++ {
		c0 := binary.LittleEndian.Uint16(color0In[p*2:])
		c1 := binary.LittleEndian.Uint16(color1In[p*2:])
		base := p * 4
		binary.LittleEndian.PutUint16(out[base:], c0)
		binary.LittleEndian.PutUint16(out[base+2:], c1)
	}
}
