// Package bc3 implements the BC3 (DXT5) block transform. BC3 blocks are
// 16 bytes: an 8-byte interpolated-alpha block (2 endpoint bytes + 6 bytes
// of 3-bit alpha indices) followed by the same 8-byte colour-endpoint/
// index layout BC1 and BC2 use. This package applies C3/C4/C5/C6
// (spec.md §§4.3–4.6) across all 4 of BC3's fields, with 3 independent
// axes of configuration: colour decorrelation mode, colour-endpoint
// split, and alpha-endpoint split — 4×2×2 = 16 legal settings
// combinations, the richest of the three BCn variants.
package bc3

import "github.com/blockforge/dxtlt/color565"

// DecorrelationMode re-exports color565's decorrelation mode. Only the
// colour endpoints are ever decorrelated — BC3's alpha endpoints are
// plain 8-bit scalars with no RGB565 structure for YCoCg-R to exploit.
type DecorrelationMode = color565.DecorrelationMode

const (
	None     = color565.None
	Variant1 = color565.Variant1
	Variant2 = color565.Variant2
	Variant3 = color565.Variant3
)

// Settings selects one of BC3's 16 legal transform configurations.
type Settings struct {
	DecorrelationMode    DecorrelationMode
	SplitColourEndpoints bool
	SplitAlphaEndpoints  bool
}

// DefaultSettings is the zero-transform configuration: fields are
// separated into their 4 sections but none is further split or
// decorrelated.
var DefaultSettings = Settings{}

// SettingsBuilder incrementally constructs a Settings value.
type SettingsBuilder struct {
	s Settings
}

func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{}
}

func (b *SettingsBuilder) Decorrelation(mode DecorrelationMode) *SettingsBuilder {
	b.s.DecorrelationMode = mode
	return b
}

func (b *SettingsBuilder) SplitColourEndpoints(split bool) *SettingsBuilder {
	b.s.SplitColourEndpoints = split
	return b
}

func (b *SettingsBuilder) SplitAlphaEndpoints(split bool) *SettingsBuilder {
	b.s.SplitAlphaEndpoints = split
	return b
}

func (b *SettingsBuilder) Build() Settings {
	return b.s
}
