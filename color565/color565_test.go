package color565

import (
	"testing"
	"testing/quick"
)

func TestRGBAccessorsRoundtrip(t *testing.T) {
	f := func(r, g, b uint8) bool {
		c := FromRGB(r, g, b)
		return c.Red() == r&0x1F && c.Green() == g&0x3F && c.Blue() == b&0x1F
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestYCoCgRBijection(t *testing.T) {
	for _, mode := range []DecorrelationMode{Variant1, Variant2, Variant3} {
		mode := mode
		f := func(raw uint16) bool {
			c := FromRaw(raw)
			got := Recorrelate(Decorrelate(c, mode), mode)
			return got == c
		}
		if err := quick.Check(f, &quick.Config{MaxCount: 20000}); err != nil {
			t.Fatalf("mode %v: %v", mode, err)
		}
	}
}

func TestYCoCgRBijectionExhaustive(t *testing.T) {
	// Exhaustive over all 2^16 raw values for each variant: cheap enough
	// to run fully rather than sample, and removes any doubt about the
	// modular-arithmetic edge cases near 0 and 31.
	for _, mode := range []DecorrelationMode{Variant1, Variant2, Variant3} {
		for raw := 0; raw <= 0xFFFF; raw++ {
			c := FromRaw(uint16(raw))
			got := Recorrelate(Decorrelate(c, mode), mode)
			if got != c {
				t.Fatalf("mode %v: raw %#04x: got %#04x", mode, raw, got.Raw())
			}
		}
	}
}

func TestDecorrelateNonePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for None mode")
		}
	}()
	Decorrelate(FromRaw(0), None)
}

func TestBatchMatchesScalar(t *testing.T) {
	vals := make([]uint16, 513)
	for i := range vals {
		vals[i] = uint16(i * 97)
	}
	for _, mode := range []DecorrelationMode{Variant1, Variant2, Variant3} {
		got := append([]uint16(nil), vals...)
		DecorrelateBatch(got, mode)
		for i, v := range vals {
			want := uint16(Decorrelate(Color565(v), mode))
			if got[i] != want {
				t.Fatalf("mode %v index %d: got %#04x want %#04x", mode, i, got[i], want)
			}
		}

		back := append([]uint16(nil), got...)
		RecorrelateBatch(back, mode)
		for i, v := range vals {
			if back[i] != v {
				t.Fatalf("mode %v roundtrip index %d: got %#04x want %#04x", mode, i, back[i], v)
			}
		}
	}
}

func TestGreenLowBitPreserved(t *testing.T) {
	// The odd G bit must survive every variant regardless of value.
	for g := uint8(0); g < 64; g++ {
		c := FromRGB(0x1F, g, 0x00)
		for _, mode := range []DecorrelationMode{Variant1, Variant2, Variant3} {
			back := Recorrelate(Decorrelate(c, mode), mode)
			if back.Green()&1 != g&1 {
				t.Fatalf("mode %v: g_lo not preserved for g=%d", mode, g)
			}
		}
	}
}
