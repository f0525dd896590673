package color565

import "github.com/blockforge/dxtlt/internal/cpufeat"

// DecorrelateBatch and RecorrelateBatch process a slice of raw RGB565
// values in place. (The bc1/bc2/bc3 fused kernels do not use them; they
// call Decorrelate/Recorrelate once per endpoint.) Internally they
// dispatch to a tile-width loop chosen
// once at package init (mirroring the teacher's internal/dsp function
// pointer tables, e.g. internal/dsp/dsp_amd64.go overriding ITransform).
//
// Every tile width produces byte-identical output to the scalar loop —
// this is testable property 3 in spec.md §8 and is exercised directly
// by TestBatchMatchesScalar.
var (
	decorrelateBatchImpl func(vals []uint16, mode DecorrelationMode)
	recorrelateBatchImpl func(vals []uint16, mode DecorrelationMode)
)

func init() {
	tile := tileSize(cpufeat.Detect())
	decorrelateBatchImpl = makeDecorrelateBatch(tile)
	recorrelateBatchImpl = makeRecorrelateBatch(tile)
}

// tileSize returns the nominal number of lanes processed per unrolled
// iteration for a given dispatch tier. On this pure-Go backend (see
// DESIGN.md, "internal/cpufeat") this only changes loop unrolling, not
// the arithmetic, but it keeps the dispatch structure faithful to
// spec.md §4.3's "vector-tile size T" description.
func tileSize(tier cpufeat.Tier) int {
	switch tier {
	case cpufeat.TierAVX512:
		return 32
	case cpufeat.TierAVX2:
		return 16
	case cpufeat.TierSSE2, cpufeat.TierNEON:
		return 8
	default:
		return 1
	}
}

func makeDecorrelateBatch(tile int) func(vals []uint16, mode DecorrelationMode) {
	return func(vals []uint16, mode DecorrelationMode) {
		n := len(vals)
		i := 0
		for ; i+tile <= n; i += tile {
			for j := 0; j < tile; j++ {
				vals[i+j] = uint16(Decorrelate(Color565(vals[i+j]), mode))
			}
		}
		// Tail: 0..tile-1 remaining elements, scalar fallback with
		// identical semantics (spec.md §4.3's tail-handling requirement).
		for ; i < n; i++ {
			vals[i] = uint16(Decorrelate(Color565(vals[i]), mode))
		}
	}
}

func makeRecorrelateBatch(tile int) func(vals []uint16, mode DecorrelationMode) {
	return func(vals []uint16, mode DecorrelationMode) {
		n := len(vals)
		i := 0
		for ; i+tile <= n; i += tile {
			for j := 0; j < tile; j++ {
				vals[i+j] = uint16(Recorrelate(Color565(vals[i+j]), mode))
			}
		}
		for ; i < n; i++ {
			vals[i] = uint16(Recorrelate(Color565(vals[i]), mode))
		}
	}
}

// DecorrelateBatch applies Decorrelate to every element of vals in place.
func DecorrelateBatch(vals []uint16, mode DecorrelationMode) {
	decorrelateBatchImpl(vals, mode)
}

// RecorrelateBatch applies Recorrelate to every element of vals in place.
func RecorrelateBatch(vals []uint16, mode DecorrelationMode) {
	recorrelateBatchImpl(vals, mode)
}
