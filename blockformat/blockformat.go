// Package blockformat defines the byte layout of the BCn block formats
// this module operates on: BC1, BC2, and BC3. Each constant here mirrors
// the wire format exactly; no value is ever guessed or rounded.
package blockformat

// Block sizes, in bytes.
const (
	// BC1BlockSize is the size of one BC1 (DXT1) block: a u16 colour pair
	// followed by a u32 index dword.
	BC1BlockSize = 8

	// BC2BlockSize is the size of one BC2 (DXT3) block: a u64 4-bit alpha
	// plane followed by an 8-byte BC1-shaped colour section.
	BC2BlockSize = 16

	// BC3BlockSize is the size of one BC3 (DXT5) block: two alpha
	// endpoints plus six bytes of packed 3-bit alpha indices, followed by
	// an 8-byte BC1-shaped colour section.
	BC3BlockSize = 16
)

// Section widths within a single block, in bytes. These are the
// per-block strides used to compute parallel-stream offsets once the
// block count is known.
const (
	// ColourPairSize is the size of one (color0, color1) pair: two u16s.
	ColourPairSize = 4
	// ColourEndpointSize is the size of a single colour endpoint (color0
	// or color1) once the pair has been split into two streams.
	ColourEndpointSize = 2
	// IndexSize is the size of the BC1-shaped colour index dword.
	IndexSize = 4

	// BC2AlphaSize is the size of BC2's 4-bit alpha plane, treated as an
	// opaque chunk (spec.md §4.3 / §9: no transform variant inspects it).
	BC2AlphaSize = 8

	// BC3AlphaEndpointSize is the size of a single BC3 alpha endpoint
	// byte (alpha0 or alpha1).
	BC3AlphaEndpointSize = 1
	// BC3AlphaIndexSize is the size of BC3's packed 3-bit alpha index
	// block (16 pixels × 3 bits, little-endian packed).
	BC3AlphaIndexSize = 6
	// BC3AlphaBlockSize is BC3AlphaEndpointSize*2 + BC3AlphaIndexSize,
	// the size of the alpha section when alpha endpoints are not split.
	BC3AlphaBlockSize = 2*BC3AlphaEndpointSize + BC3AlphaIndexSize
)

// ValidateLength checks that byteLen is an exact multiple of blockSize
// and returns the resulting block count.
func ValidateLength(byteLen, blockSize int) (blockCount int, ok bool) {
	if byteLen < 0 || blockSize <= 0 || byteLen%blockSize != 0 {
		return 0, false
	}
	return byteLen / blockSize, true
}
