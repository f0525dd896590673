package bc1

import (
	"encoding/binary"

	"github.com/blockforge/dxtlt/color565"
)

const (
	blockSize   = 8 // blockformat.BC1BlockSize
	colourPair  = 4
	indexSize   = 4
)

// splitStandard implements C3: the "no decorrelation, no endpoint
// split" baseline. Block stream [C|I|C|I|...] becomes
// [CCCC...||IIII...].
func splitStandard(input, output []byte, n int) {
	colourSectionLen := n * colourPair
	colours := output[:colourSectionLen]
	indices := output[colourSectionLen : colourSectionLen+n*indexSize]
	for i := 0; i < n; i++ {
		blockOff := i * blockSize
		copy(colours[i*colourPair:i*colourPair+colourPair], input[blockOff:blockOff+colourPair])
		copy(indices[i*indexSize:i*indexSize+indexSize], input[blockOff+colourPair:blockOff+blockSize])
	}
}

// unsplitStandard mirrors splitStandard exactly.
func unsplitStandard(input, output []byte, n int) {
	colourSectionLen := n * colourPair
	colours := input[:colourSectionLen]
	indices := input[colourSectionLen : colourSectionLen+n*indexSize]
	for i := 0; i < n; i++ {
		blockOff := i * blockSize
		copy(output[blockOff:blockOff+colourPair], colours[i*colourPair:i*colourPair+colourPair])
		copy(output[blockOff+colourPair:blockOff+blockSize], indices[i*indexSize:i*indexSize+indexSize])
	}
}

// splitFused implements C4: the fused decorrelate/split kernel. It
// covers the remaining 3 of BC1's 2×2 (has_split, has_decorr)
// combinations in one parameterized pass (the 4th, neither option, is
// splitStandard). A single parameterized function stands in here for
// what spec.md §4.4 describes as 4 separately monomorphized kernels:
// without per-ISA SIMD intrinsics (see internal/cpufeat's DESIGN.md
// entry) there is no generated-code benefit to 4 copy-pasted bodies, so
// the runtime branches on split/decorr once per call rather than once
// per block.
func splitFused(input, output []byte, n int, mode DecorrelationMode, split bool) {
	decorr := mode != None
	indices := output[len(output)-n*indexSize:]

	if split {
		colour0 := output[:n*2]
		colour1 := output[n*2 : n*4]
		for i := 0; i < n; i++ {
			blockOff := i * blockSize
			c0 := binary.LittleEndian.Uint16(input[blockOff:])
			c1 := binary.LittleEndian.Uint16(input[blockOff+2:])
			if decorr {
				c0 = uint16(color565.Decorrelate(color565.FromRaw(c0), mode))
				c1 = uint16(color565.Decorrelate(color565.FromRaw(c1), mode))
			}
			binary.LittleEndian.PutUint16(colour0[i*2:], c0)
			binary.LittleEndian.PutUint16(colour1[i*2:], c1)
			copy(indices[i*indexSize:i*indexSize+indexSize], input[blockOff+colourPair:blockOff+blockSize])
		}
		return
	}

	colours := output[:n*colourPair]
	for i := 0; i < n; i++ {
		blockOff := i * blockSize
		c0 := binary.LittleEndian.Uint16(input[blockOff:])
		c1 := binary.LittleEndian.Uint16(input[blockOff+2:])
		if decorr {
			c0 = uint16(color565.Decorrelate(color565.FromRaw(c0), mode))
			c1 = uint16(color565.Decorrelate(color565.FromRaw(c1), mode))
		}
		binary.LittleEndian.PutUint16(colours[i*colourPair:], c0)
		binary.LittleEndian.PutUint16(colours[i*colourPair+2:], c1)
		copy(indices[i*indexSize:i*indexSize+indexSize], input[blockOff+colourPair:blockOff+blockSize])
	}
}

// unsplitFused mirrors splitFused.
func unsplitFused(input, output []byte, n int, mode DecorrelationMode, split bool) {
	decorr := mode != None
	indices := input[len(input)-n*indexSize:]

	if split {
		colour0 := input[:n*2]
		colour1 := input[n*2 : n*4]
		for i := 0; i < n; i++ {
			c0 := binary.LittleEndian.Uint16(colour0[i*2:])
			c1 := binary.LittleEndian.Uint16(colour1[i*2:])
			if decorr {
				c0 = uint16(color565.Recorrelate(color565.FromRaw(c0), mode))
				c1 = uint16(color565.Recorrelate(color565.FromRaw(c1), mode))
			}
			blockOff := i * blockSize
			binary.LittleEndian.PutUint16(output[blockOff:], c0)
			binary.LittleEndian.PutUint16(output[blockOff+2:], c1)
			copy(output[blockOff+colourPair:blockOff+blockSize], indices[i*indexSize:i*indexSize+indexSize])
		}
		return
	}

	colours := input[:n*colourPair]
	for i := 0; i < n; i++ {
		c0 := binary.LittleEndian.Uint16(colours[i*colourPair:])
		c1 := binary.LittleEndian.Uint16(colours[i*colourPair+2:])
		if decorr {
			c0 = uint16(color565.Recorrelate(color565.FromRaw(c0), mode))
			c1 = uint16(color565.Recorrelate(color565.FromRaw(c1), mode))
		}
		blockOff := i * blockSize
		binary.LittleEndian.PutUint16(output[blockOff:], c0)
		binary.LittleEndian.PutUint16(output[blockOff+2:], c1)
		copy(output[blockOff+colourPair:blockOff+blockSize], indices[i*indexSize:i*indexSize+indexSize])
	}
}
