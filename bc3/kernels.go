package bc3

import (
	"encoding/binary"

	"github.com/blockforge/dxtlt/color565"
)

const (
	blockSize         = 16 // blockformat.BC3BlockSize
	alphaEndpointSize = 1  // blockformat.BC3AlphaEndpointSize, per endpoint
	alphaEndpointsLen = 2  // two endpoint bytes per block
	alphaIndexSize    = 6  // blockformat.BC3AlphaIndexSize
	alphaBlockSize    = 8  // alphaEndpointsLen + alphaIndexSize
	colourPair        = 4  // blockformat.ColourPairSize
	colourIndexSize   = 4  // blockformat.IndexSize
)

// sectionOffsets computes the byte offsets of BC3's 4 always-separated
// sections within an n-block output buffer: alpha endpoints, alpha
// indices, colour endpoints, colour indices, in that order. Splitting
// either endpoint pair further subdivides its section in place without
// changing these offsets or the overall length.
type sectionOffsets struct {
	alphaEnd, alphaIdx, colourEnd, colourIdx int
}

func offsetsFor(n int) sectionOffsets {
	alphaEnd := 0
	alphaIdx := alphaEnd + n*alphaEndpointsLen
	colourEnd := alphaIdx + n*alphaIndexSize
	colourIdx := colourEnd + n*colourPair
	return sectionOffsets{alphaEnd, alphaIdx, colourEnd, colourIdx}
}

// splitStandard is C3 for BC3: the 4 fields are separated into
// contiguous sections; neither endpoint pair is further split, and no
// decorrelation is applied.
func splitStandard(input, output []byte, n int) {
	off := offsetsFor(n)
	alphaEnd := output[off.alphaEnd : off.alphaEnd+n*alphaEndpointsLen]
	alphaIdx := output[off.alphaIdx : off.alphaIdx+n*alphaIndexSize]
	colourEnd := output[off.colourEnd : off.colourEnd+n*colourPair]
	colourIdx := output[off.colourIdx : off.colourIdx+n*colourIndexSize]

	for i := 0; i < n; i++ {
		b := i * blockSize
		copy(alphaEnd[i*alphaEndpointsLen:i*alphaEndpointsLen+alphaEndpointsLen], input[b:b+alphaEndpointsLen])
		copy(alphaIdx[i*alphaIndexSize:i*alphaIndexSize+alphaIndexSize], input[b+alphaEndpointsLen:b+alphaBlockSize])
		copy(colourEnd[i*colourPair:i*colourPair+colourPair], input[b+alphaBlockSize:b+alphaBlockSize+colourPair])
		copy(colourIdx[i*colourIndexSize:i*colourIndexSize+colourIndexSize], input[b+alphaBlockSize+colourPair:b+blockSize])
	}
}

func unsplitStandard(input, output []byte, n int) {
	off := offsetsFor(n)
	alphaEnd := input[off.alphaEnd : off.alphaEnd+n*alphaEndpointsLen]
	alphaIdx := input[off.alphaIdx : off.alphaIdx+n*alphaIndexSize]
	colourEnd := input[off.colourEnd : off.colourEnd+n*colourPair]
	colourIdx := input[off.colourIdx : off.colourIdx+n*colourIndexSize]

	for i := 0; i < n; i++ {
		b := i * blockSize
		copy(output[b:b+alphaEndpointsLen], alphaEnd[i*alphaEndpointsLen:i*alphaEndpointsLen+alphaEndpointsLen])
		copy(output[b+alphaEndpointsLen:b+alphaBlockSize], alphaIdx[i*alphaIndexSize:i*alphaIndexSize+alphaIndexSize])
		copy(output[b+alphaBlockSize:b+alphaBlockSize+colourPair], colourEnd[i*colourPair:i*colourPair+colourPair])
		copy(output[b+alphaBlockSize+colourPair:b+blockSize], colourIdx[i*colourIndexSize:i*colourIndexSize+colourIndexSize])
	}
}

// splitFused is C4 for BC3: one parameterized kernel covering the
// remaining 15 of 16 settings combinations (colour decorrelation mode,
// colour-endpoint split, alpha-endpoint split), for the reasons
// bc1.splitFused documents — no per-ISA codegen benefit to hand-unrolled
// monomorphized variants without real SIMD intrinsics behind them.
func splitFused(input, output []byte, n int, mode DecorrelationMode, splitColour, splitAlpha bool) {
	decorr := mode != None
	off := offsetsFor(n)

	alphaIdx := output[off.alphaIdx : off.alphaIdx+n*alphaIndexSize]
	colourIdx := output[off.colourIdx : off.colourIdx+n*colourIndexSize]

	var alpha0, alpha1, alphaEnd []byte
	if splitAlpha {
		alpha0 = output[off.alphaEnd : off.alphaEnd+n]
		alpha1 = output[off.alphaEnd+n : off.alphaEnd+2*n]
	} else {
		alphaEnd = output[off.alphaEnd : off.alphaEnd+n*alphaEndpointsLen]
	}

	var colour0, colour1, colourEnd []byte
	if splitColour {
		colour0 = output[off.colourEnd : off.colourEnd+n*2]
		colour1 = output[off.colourEnd+n*2 : off.colourEnd+n*4]
	} else {
		colourEnd = output[off.colourEnd : off.colourEnd+n*colourPair]
	}

	for i := 0; i < n; i++ {
		b := i * blockSize

		if splitAlpha {
			alpha0[i] = input[b]
			alpha1[i] = input[b+1]
		} else {
			copy(alphaEnd[i*alphaEndpointsLen:i*alphaEndpointsLen+alphaEndpointsLen], input[b:b+alphaEndpointsLen])
		}
		copy(alphaIdx[i*alphaIndexSize:i*alphaIndexSize+alphaIndexSize], input[b+alphaEndpointsLen:b+alphaBlockSize])

		c0 := binary.LittleEndian.Uint16(input[b+alphaBlockSize:])
		c1 := binary.LittleEndian.Uint16(input[b+alphaBlockSize+2:])
		if decorr {
			c0 = uint16(color565.Decorrelate(color565.FromRaw(c0), mode))
			c1 = uint16(color565.Decorrelate(color565.FromRaw(c1), mode))
		}
		if splitColour {
			binary.LittleEndian.PutUint16(colour0[i*2:], c0)
			binary.LittleEndian.PutUint16(colour1[i*2:], c1)
		} else {
			binary.LittleEndian.PutUint16(colourEnd[i*colourPair:], c0)
			binary.LittleEndian.PutUint16(colourEnd[i*colourPair+2:], c1)
		}
		copy(colourIdx[i*colourIndexSize:i*colourIndexSize+colourIndexSize], input[b+alphaBlockSize+colourPair:b+blockSize])
	}
}

func unsplitFused(input, output []byte, n int, mode DecorrelationMode, splitColour, splitAlpha bool) {
	decorr := mode != None
	off := offsetsFor(n)

	alphaIdx := input[off.alphaIdx : off.alphaIdx+n*alphaIndexSize]
	colourIdx := input[off.colourIdx : off.colourIdx+n*colourIndexSize]

	var alpha0, alpha1, alphaEnd []byte
	if splitAlpha {
		alpha0 = input[off.alphaEnd : off.alphaEnd+n]
		alpha1 = input[off.alphaEnd+n : off.alphaEnd+2*n]
	} else {
		alphaEnd = input[off.alphaEnd : off.alphaEnd+n*alphaEndpointsLen]
	}

	var colour0, colour1, colourEnd []byte
	if splitColour {
		colour0 = input[off.colourEnd : off.colourEnd+n*2]
		colour1 = input[off.colourEnd+n*2 : off.colourEnd+n*4]
	} else {
		colourEnd = input[off.colourEnd : off.colourEnd+n*colourPair]
	}

	for i := 0; i < n; i++ {
		b := i * blockSize

		if splitAlpha {
			output[b] = alpha0[i]
			output[b+1] = alpha1[i]
		} else {
			copy(output[b:b+alphaEndpointsLen], alphaEnd[i*alphaEndpointsLen:i*alphaEndpointsLen+alphaEndpointsLen])
		}
		copy(output[b+alphaEndpointsLen:b+alphaBlockSize], alphaIdx[i*alphaIndexSize:i*alphaIndexSize+alphaIndexSize])

		var c0, c1 uint16
		if splitColour {
			c0 = binary.LittleEndian.Uint16(colour0[i*2:])
			c1 = binary.LittleEndian.Uint16(colour1[i*2:])
		} else {
			c0 = binary.LittleEndian.Uint16(colourEnd[i*colourPair:])
			c1 = binary.LittleEndian.Uint16(colourEnd[i*colourPair+2:])
		}
		if decorr {
			c0 = uint16(color565.Recorrelate(color565.FromRaw(c0), mode))
			c1 = uint16(color565.Recorrelate(color565.FromRaw(c1), mode))
		}
		binary.LittleEndian.PutUint16(output[b+alphaBlockSize:], c0)
		binary.LittleEndian.PutUint16(output[b+alphaBlockSize+2:], c1)
		copy(output[b+alphaBlockSize+colourPair:b+blockSize], colourIdx[i*colourIndexSize:i*colourIndexSize+colourIndexSize])
	}
}
