package color565

// DecorrelationMode selects one of the three reversible bit-packings of
// a YCoCg-R decorrelated colour back into 16 bits, or None to apply no
// decorrelation at all. None is a valid settings value meaning "leave
// the endpoint as-is"; it is never passed into Decorrelate/Recorrelate
// themselves (those dispatch on {Variant1,Variant2,Variant3} only — the
// driver layer is responsible for skipping the call when the mode is
// None, matching spec.md §9's note on exhaustive-match unreachability).
type DecorrelationMode uint8

const (
	None DecorrelationMode = iota
	Variant1
	Variant2
	Variant3
)

// String implements fmt.Stringer for log/CLI output.
func (m DecorrelationMode) String() string {
	switch m {
	case None:
		return "None"
	case Variant1:
		return "Variant1"
	case Variant2:
		return "Variant2"
	case Variant3:
		return "Variant3"
	default:
		return "Invalid"
	}
}

// ycocgCore holds the four intermediate values shared by every variant's
// forward transform; only the final repacking into 16 bits differs.
type ycocgCore struct {
	y, co, cg, gLo uint8
}

func decorrelateCore(c Color565) ycocgCore {
	r := c.Red()
	b := c.Blue()
	gHi, gLo := greenHiLo(c)

	co := mod32(int32(r) - int32(b))
	t := mod32(int32(b) + int32(co>>1))
	cg := mod32(int32(gHi) - int32(t))
	y := mod32(int32(t) + int32(cg>>1))

	return ycocgCore{y: y, co: co, cg: cg, gLo: gLo}
}

func recorrelateCore(y, co, cg uint8) (r, gHi, b uint8) {
	t := mod32(int32(y) - int32(cg>>1))
	gHi = mod32(int32(cg) + int32(t))
	b = mod32(int32(t) - int32(co>>1))
	r = mod32(int32(co) + int32(b))
	return
}

// Decorrelate applies the forward YCoCg-R transform to c under the
// given variant and returns the repacked 16-bit result. mode must be one
// of Variant1, Variant2, Variant3.
func Decorrelate(c Color565, mode DecorrelationMode) Color565 {
	core := decorrelateCore(c)
	switch mode {
	case Variant1:
		return Color565(uint16(core.y)<<11 | uint16(core.co)<<6 | uint16(core.gLo)<<5 | uint16(core.cg))
	case Variant2:
		return Color565(uint16(core.gLo)<<15 | uint16(core.y)<<10 | uint16(core.co)<<5 | uint16(core.cg))
	case Variant3:
		return Color565(uint16(core.y)<<11 | uint16(core.co)<<6 | uint16(core.cg)<<1 | uint16(core.gLo))
	default:
		panic("color565: Decorrelate called with non-decorrelating mode")
	}
}

// Recorrelate reverses Decorrelate: for every c and mode,
// Recorrelate(Decorrelate(c, mode), mode) == c.
func Recorrelate(c Color565, mode DecorrelationMode) Color565 {
	var y, co, cg, gLo uint8
	raw := c.Raw()
	switch mode {
	case Variant1:
		y = uint8((raw >> 11) & 0x1F)
		co = uint8((raw >> 6) & 0x1F)
		gLo = uint8((raw >> 5) & 1)
		cg = uint8(raw & 0x1F)
	case Variant2:
		gLo = uint8((raw >> 15) & 1)
		y = uint8((raw >> 10) & 0x1F)
		co = uint8((raw >> 5) & 0x1F)
		cg = uint8(raw & 0x1F)
	case Variant3:
		y = uint8((raw >> 11) & 0x1F)
		co = uint8((raw >> 6) & 0x1F)
		cg = uint8((raw >> 1) & 0x1F)
		gLo = uint8(raw & 1)
	default:
		panic("color565: Recorrelate called with non-decorrelating mode")
	}

	r, gHi, b := recorrelateCore(y, co, cg)
	g := gHi<<1 | gLo
	return FromRGB(r, g, b)
}
