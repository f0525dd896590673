// Package bc2 implements the BC2 (DXT3) block transform. BC2 blocks are
// 16 bytes: 8 bytes of explicit (uncompressed, 4-bit-per-texel) alpha
// followed by the same 8-byte colour-endpoint/index layout BC1 uses.
// This package applies C3/C4/C5/C6 (spec.md §§4.3–4.6) to that trailing
// 8-byte colour section only; the alpha section is never decorrelated
// or split — it carries no colour-endpoint structure for YCoCg-R or
// endpoint splitting to exploit — and is instead relocated verbatim
// into its own contiguous section, same as colour and index data are.
package bc2

import "github.com/blockforge/dxtlt/color565"

// DecorrelationMode re-exports color565's decorrelation mode, same as bc1.
type DecorrelationMode = color565.DecorrelationMode

const (
	None     = color565.None
	Variant1 = color565.Variant1
	Variant2 = color565.Variant2
	Variant3 = color565.Variant3
)

// Settings selects one of BC2's 8 legal transform configurations: 4
// decorrelation modes × {split, unsplit} colour endpoints, applied to
// the colour section only.
type Settings struct {
	DecorrelationMode    DecorrelationMode
	SplitColourEndpoints bool
}

// DefaultSettings is the zero-transform configuration.
var DefaultSettings = Settings{}

// SettingsBuilder incrementally constructs a Settings value (same
// pattern as bc1.SettingsBuilder).
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

func (b *SettingsBuilder) Build() Settings {
	return b.s
}
