package bc2

import (
	"encoding/binary"

	"github.com/blockforge/dxtlt/color565"
)

const (
	blockSize   = 16 // blockformat.BC2BlockSize
	alphaSize   = 8  // blockformat.BC2AlphaSize
	colourPair  = 4  // blockformat.ColourPairSize
	indexSize   = 4  // blockformat.IndexSize
	colourStart = alphaSize
)

// splitStandard is C3 for BC2: alpha is relocated verbatim, the trailing
// 8-byte colour section is split into colour and index streams exactly
// as bc1.splitStandard does.
func splitStandard(input, output []byte, n int) {
	alphaSectionLen := n * alphaSize
	colourSectionLen := n * colourPair
	alphas := output[:alphaSectionLen]
	colours := output[alphaSectionLen : alphaSectionLen+colourSectionLen]
	indices := output[alphaSectionLen+colourSectionLen:]
	for i := 0; i < n; i++ {
		blockOff := i * blockSize
		copy(alphas[i*alphaSize:i*alphaSize+alphaSize], input[blockOff:blockOff+alphaSize])
		copy(colours[i*colourPair:i*colourPair+colourPair], input[blockOff+colourStart:blockOff+colourStart+colourPair])
		copy(indices[i*indexSize:i*indexSize+indexSize], input[blockOff+colourStart+colourPair:blockOff+blockSize])
	}
}

func unsplitStandard(input, output []byte, n int) {
	alphaSectionLen := n * alphaSize
	colourSectionLen := n * colourPair
	alphas := input[:alphaSectionLen]
	colours := input[alphaSectionLen : alphaSectionLen+colourSectionLen]
	indices := input[alphaSectionLen+colourSectionLen:]
	for i := 0; i < n; i++ {
		blockOff := i * blockSize
		copy(output[blockOff:blockOff+alphaSize], alphas[i*alphaSize:i*alphaSize+alphaSize])
		copy(output[blockOff+colourStart:blockOff+colourStart+colourPair], colours[i*colourPair:i*colourPair+colourPair])
		copy(output[blockOff+colourStart+colourPair:blockOff+blockSize], indices[i*indexSize:i*indexSize+indexSize])
	}
}

// splitFused is C4 for BC2: same fused decorrelate/split treatment bc1
// gives its colour section, plus the verbatim alpha relocation
// splitStandard also performs.
func splitFused(input, output []byte, n int, mode DecorrelationMode, split bool) {
	decorr := mode != None
	alphaSectionLen := n * alphaSize
	alphas := output[:alphaSectionLen]
	for i := 0; i < n; i++ {
		blockOff := i * blockSize
		copy(alphas[i*alphaSize:i*alphaSize+alphaSize], input[blockOff:blockOff+alphaSize])
	}

	rest := output[alphaSectionLen:]
	indices := rest[len(rest)-n*indexSize:]

	if split {
		colour0 := rest[:n*2]
		colour1 := rest[n*2 : n*4]
		for i := 0; i < n; i++ {
			blockOff := i*blockSize + colourStart
			c0 := binary.LittleEndian.Uint16(input[blockOff:])
			c1 := binary.LittleEndian.Uint16(input[blockOff+2:])
			if decorr {
				c0 = uint16(color565.Decorrelate(color565.FromRaw(c0), mode))
				c1 = uint16(color565.Decorrelate(color565.FromRaw(c1), mode))
			}
			binary.LittleEndian.PutUint16(colour0[i*2:], c0)
			binary.LittleEndian.PutUint16(colour1[i*2:], c1)
			copy(indices[i*indexSize:i*indexSize+indexSize], input[blockOff+colourPair:blockOff+colourPair+indexSize])
		}
		return
	}

	colours := rest[:n*colourPair]
	for i := 0; i < n; i++ {
		blockOff := i*blockSize + colourStart
		c0 := binary.LittleEndian.Uint16(input[blockOff:])
		c1 := binary.LittleEndian.Uint16(input[blockOff+2:])
		if decorr {
			c0 = uint16(color565.Decorrelate(color565.FromRaw(c0), mode))
			c1 = uint16(color565.Decorrelate(color565.FromRaw(c1), mode))
		}
		binary.LittleEndian.PutUint16(colours[i*colourPair:], c0)
		binary.LittleEndian.PutUint16(colours[i*colourPair+2:], c1)
		copy(indices[i*indexSize:i*indexSize+indexSize], input[blockOff+colourPair:blockOff+colourPair+indexSize])
	}
}

func unsplitFused(input, output []byte, n int, mode DecorrelationMode, split bool) {
	decorr := mode != None
	alphaSectionLen := n * alphaSize
	alphas := input[:alphaSectionLen]
	for i := 0; i < n; i++ {
		blockOff := i * blockSize
		copy(output[blockOff:blockOff+alphaSize], alphas[i*alphaSize:i*alphaSize+alphaSize])
	}

	rest := input[alphaSectionLen:]
	indices := rest[len(rest)-n*indexSize:]

	if split {
		colour0 := rest[:n*2]
		colour1 := rest[n*2 : n*4]
		for i := 0; i < n; i++ {
			c0 := binary.LittleEndian.Uint16(colour0[i*2:])
			c1 := binary.LittleEndian.Uint16(colour1[i*2:])
			if decorr {
				c0 = uint16(color565.Recorrelate(color565.FromRaw(c0), mode))
				c1 = uint16(color565.Recorrelate(color565.FromRaw(c1), mode))
			}
			blockOff := i*blockSize + colourStart
			binary.LittleEndian.PutUint16(output[blockOff:], c0)
			binary.LittleEndian.PutUint16(output[blockOff+2:], c1)
			copy(output[blockOff+colourPair:blockOff+colourPair+indexSize], indices[i*indexSize:i*indexSize+indexSize])
		}
		return
	}

	colours := rest[:n*colourPair]
	for i := 0; i < n; i++ {
		c0 := binary.LittleEndian.Uint16(colours[i*colourPair:])
		c1 := binary.LittleEndian.Uint16(colours[i*colourPair+2:])
		if decorr {
			c0 = uint16(color565.Recorrelate(color565.FromRaw(c0), mode))
			c1 = uint16(color565.Recorrelate(color565.FromRaw(c1), mode))
		}
		blockOff := i*blockSize + colourStart
		binary.LittleEndian.PutUint16(output[blockOff:], c0)
		binary.LittleEndian.PutUint16(output[blockOff+2:], c1)
		copy(output[blockOff+colourPair:blockOff+colourPair+indexSize], indices[i*indexSize:i*indexSize+indexSize])
	}
}
