// Package bc1 implements the BC1 (DXT1) block transform: C3 (standard
// split), C4 (fused decorrelate/split variants), C5 (the public
// transform driver), and C6 (the BC1 auto-tuner), as specified in
// spec.md §§4.3–4.6 for the BC1 variant.
package bc1

import "github.com/blockforge/dxtlt/color565"

// DecorrelationMode re-exports color565's decorrelation mode so callers
// of this package never need to import color565 directly for the common
// case of just picking a BC1 setting.
type DecorrelationMode = color565.DecorrelationMode

// The four legal decorrelation modes.
const (
	None     = color565.None
	Variant1 = color565.Variant1
	Variant2 = color565.Variant2
	Variant3 = color565.Variant3
)

// Settings selects one of BC1's 8 legal transform configurations
// (spec.md §3): 4 decorrelation modes × {split, unsplit} colour
// endpoints.
type Settings struct {
	DecorrelationMode    DecorrelationMode
	SplitColourEndpoints bool
}

// DefaultSettings is the zero-transform configuration: no decorrelation,
// no endpoint split. It is also Go's zero value for Settings.
var DefaultSettings = Settings{}

// SettingsBuilder incrementally constructs a Settings value. It mirrors
// the fluent configuration object spec.md's design notes describe for
// the C-API builder layer (here reimplemented as a plain Go builder,
// since this package is a Go API rather than an ABI-stable C wrapper).
type SettingsBuilder struct {
	s Settings
}

// NewSettingsBuilder returns a builder initialised to DefaultSettings.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{}
}

// Decorrelation sets the decorrelation mode.
func (b *SettingsBuilder) Decorrelation(mode DecorrelationMode) *SettingsBuilder {
	b.s.DecorrelationMode = mode
	return b
}

// SplitColourEndpoints toggles endpoint splitting.
func (b *SettingsBuilder) SplitColourEndpoints(split bool) *SettingsBuilder {
	b.s.SplitColourEndpoints = split
	return b
}

// Build returns the constructed Settings value.
func (b *SettingsBuilder) Build() Settings {
	return b.s
}
