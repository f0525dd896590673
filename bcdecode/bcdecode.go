// Package bcdecode decodes one compressed BC1/BC2/BC3 block into its 16
// RGBA texels. It exists only to give the test suite and cmd/dxtltcli's
// "inspect" subcommand an independent way to confirm a transform/
// untransform roundtrip reproduces the original texture's visible
// content, not as a production decoder — no file format, mip chain, or
// batch-decode concern is in scope. Grounded on the "ideal" DX9
// interpolation weights etcpak and the MSDN BC1/BC2/BC3 reference pages
// describe (see original_source's bc3_decode.rs doc comment).
package bcdecode

import (
	"fmt"
	"image/color"

	"github.com/blockforge/dxtlt/blockformat"
	"github.com/blockforge/dxtlt/color565"
)

// Block holds the 16 decoded texels of one 4x4 BCn block, row-major.
type Block struct {
	Pixels [16]color.RGBA
}

// At returns the pixel at column x, row y (each in [0,4)).
func (b *Block) At(x, y int) color.RGBA {
	return b.Pixels[y*4+x]
}

func expand5(v uint8) uint8 { return v<<3 | v>>2 }
func expand6(v uint8) uint8 { return v<<2 | v>>4 }

func colourDict(c0, c1 color565.Color565) (dict [4]color.RGBA, fourColour bool) {
	r0, g0, b0 := expand5(c0.Red()), expand6(c0.Green()), expand5(c0.Blue())
	r1, g1, b1 := expand5(c1.Red()), expand6(c1.Green()), expand5(c1.Blue())
	dict[0] = color.RGBA{r0, g0, b0, 255}
	dict[1] = color.RGBA{r1, g1, b1, 255}

	// BC1 drops to a 3-colour + transparent-black palette when c0.Raw() <=
	// c1.Raw(). BC2/BC3 always use 4-colour mode, so their decoders
	// rebuild dict[2]/dict[3] with force4Colour after this call.
	if c0.Raw() > c1.Raw() {
		dict[2] = color.RGBA{
			uint8((2*uint16(r0) + uint16(r1)) / 3),
			uint8((2*uint16(g0) + uint16(g1)) / 3),
			uint8((2*uint16(b0) + uint16(b1)) / 3),
			255,
		}
		dict[3] = color.RGBA{
			uint8((uint16(r0) + 2*uint16(r1)) / 3),
			uint8((uint16(g0) + 2*uint16(g1)) / 3),
			uint8((uint16(b0) + 2*uint16(b1)) / 3),
			255,
		}
		return dict, true
	}

	dict[2] = color.RGBA{
		uint8((uint16(r0) + uint16(r1)) / 2),
		uint8((uint16(g0) + uint16(g1)) / 2),
		uint8((uint16(b0) + uint16(b1)) / 2),
		255,
	}
	dict[3] = color.RGBA{0, 0, 0, 0}
	return dict, false
}

func decodeColourIndices(block *Block, colourSrc []byte, dict [4]color.RGBA, alphaOf func(x, y int) uint8) {
	idx := uint32(colourSrc[4]) | uint32(colourSrc[5])<<8 | uint32(colourSrc[6])<<16 | uint32(colourSrc[7])<<24
	pos := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pixelIdx := (idx >> pos) & 0x3
			px := dict[pixelIdx]
			px.A = alphaOf(x, y)
			block.Pixels[y*4+x] = px
			pos += 2
		}
	}
}

// DecodeBC1 decodes a single 8-byte BC1 block.
func DecodeBC1(src []byte) (*Block, error) {
	if len(src) < blockformat.BC1BlockSize {
		return nil, fmt.Errorf("bcdecode: BC1 source too short: %d bytes", len(src))
	}
	c0 := color565.FromRaw(uint16(src[0]) | uint16(src[1])<<8)
	c1 := color565.FromRaw(uint16(src[2]) | uint16(src[3])<<8)
	dict, fourColour := colourDict(c0, c1)

	block := &Block{}
	decodeColourIndices(block, src, dict, func(x, y int) uint8 {
		if !fourColour {
			idx := uint32(src[4]) | uint32(src[5])<<8 | uint32(src[6])<<16 | uint32(src[7])<<24
			pixelIdx := (idx >> ((y*4 + x) * 2)) & 0x3
			if pixelIdx == 3 {
				return 0
			}
		}
		return 255
	})
	return block, nil
}

// DecodeBC2 decodes a single 16-byte BC2 block: 8 bytes of 4-bit-per-
// texel explicit alpha followed by a BC1-shaped colour block (always in
// 4-colour mode).
func DecodeBC2(src []byte) (*Block, error) {
	if len(src) < blockformat.BC2BlockSize {
		return nil, fmt.Errorf("bcdecode: BC2 source too short: %d bytes", len(src))
	}
	colourSrc := src[8:]
	c0 := color565.FromRaw(uint16(colourSrc[0]) | uint16(colourSrc[1])<<8)
	c1 := color565.FromRaw(uint16(colourSrc[2]) | uint16(colourSrc[3])<<8)
	dict, _ := colourDict(c0, c1)
	dict = force4Colour(c0, c1, dict)

	block := &Block{}
	decodeColourIndices(block, colourSrc, dict, func(x, y int) uint8 {
		nibbleIdx := y*4 + x
		byteOff := nibbleIdx / 2
		if nibbleIdx%2 == 0 {
			return expand4(src[byteOff] & 0x0F)
		}
		return expand4(src[byteOff] >> 4)
	})
	return block, nil
}

// DecodeBC3 decodes a single 16-byte BC3 block: an 8-byte BC4-style
// interpolated alpha block followed by a BC1-shaped colour block
// (always in 4-colour mode).
func DecodeBC3(src []byte) (*Block, error) {
	if len(src) < blockformat.BC3BlockSize {
		return nil, fmt.Errorf("bcdecode: BC3 source too short: %d bytes", len(src))
	}
	colourSrc := src[8:]
	c0 := color565.FromRaw(uint16(colourSrc[0]) | uint16(colourSrc[1])<<8)
	c1 := color565.FromRaw(uint16(colourSrc[2]) | uint16(colourSrc[3])<<8)
	dict, _ := colourDict(c0, c1)
	dict = force4Colour(c0, c1, dict)

	alphaValues := decodeAlphaLUT(src[0], src[1])
	alphaIndices := src[2:8]

	block := &Block{}
	decodeColourIndices(block, colourSrc, dict, func(x, y int) uint8 {
		bitPos := (y*4 + x) * 3
		bytePos := bitPos / 8
		bitShift := uint(bitPos % 8)
		var raw uint16
		if bitShift <= 5 {
			raw = uint16(alphaIndices[bytePos] >> bitShift)
		} else {
			raw = uint16(alphaIndices[bytePos]>>bitShift) | uint16(alphaIndices[bytePos+1])<<(8-bitShift)
		}
		return alphaValues[raw&0x7]
	})
	return block, nil
}

// force4Colour rebuilds dict[2]/dict[3] as interpolated colours
// regardless of endpoint ordering: BC2 and BC3 never use BC1's
// 3-colour-plus-transparency mode.
func force4Colour(c0, c1 color565.Color565, dict [4]color.RGBA) [4]color.RGBA {
	r0, g0, b0 := expand5(c0.Red()), expand6(c0.Green()), expand5(c0.Blue())
	r1, g1, b1 := expand5(c1.Red()), expand6(c1.Green()), expand5(c1.Blue())
	dict[2] = color.RGBA{
		uint8((2*uint16(r0) + uint16(r1)) / 3),
		uint8((2*uint16(g0) + uint16(g1)) / 3),
		uint8((2*uint16(b0) + uint16(b1)) / 3),
		255,
	}
	dict[3] = color.RGBA{
		uint8((uint16(r0) + 2*uint16(r1)) / 3),
		uint8((uint16(g0) + 2*uint16(g1)) / 3),
		uint8((uint16(b0) + 2*uint16(b1)) / 3),
		255,
	}
	return dict
}

func expand4(v uint8) uint8 { return v<<4 | v }

// decodeAlphaLUT builds the 8-entry alpha table BC3's interpolated alpha
// block uses: the two endpoints plus 6 interpolated values when
// alpha0 > alpha1, else the two endpoints, 4 interpolated values, and
// fixed transparent (0) and opaque (255).
func decodeAlphaLUT(alpha0, alpha1 byte) [8]uint8 {
	var values [8]uint8
	values[0] = alpha0
	values[1] = alpha1
	a0, a1 := uint16(alpha0), uint16(alpha1)
	if alpha0 > alpha1 {
		values[2] = uint8((6*a0 + 1*a1) / 7)
		values[3] = uint8((5*a0 + 2*a1) / 7)
		values[4] = uint8((4*a0 + 3*a1) / 7)
		values[5] = uint8((3*a0 + 4*a1) / 7)
		values[6] = uint8((2*a0 + 5*a1) / 7)
		values[7] = uint8((1*a0 + 6*a1) / 7)
	} else {
		values[2] = uint8((4*a0 + 1*a1) / 5)
		values[3] = uint8((3*a0 + 2*a1) / 5)
		values[4] = uint8((2*a0 + 3*a1) / 5)
		values[5] = uint8((1*a0 + 4*a1) / 5)
		values[6] = 0
		values[7] = 255
	}
	return values
}
