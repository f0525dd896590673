package main

import (
	"path/filepath"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"bc1", "bc2", "bc3"} {
		if _, err := parseFormat(s); err != nil {
			t.Fatalf("parseFormat(%q): %v", s, err)
		}
	}
	if _, err := parseFormat("bc7"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestFormatBlockSize(t *testing.T) {
	if FormatBC1.blockSize() != 8 {
		t.Fatalf("bc1 block size: got %d", FormatBC1.blockSize())
	}
	if FormatBC2.blockSize() != 16 || FormatBC3.blockSize() != 16 {
		t.Fatal("bc2/bc3 block size should be 16")
	}
}

func TestParseDecorrelation(t *testing.T) {
	cases := map[string]uint8{"none": 0, "": 0, "v1": 1, "v2": 2, "v3": 3}
	for s, want := range cases {
		got, err := parseDecorrelation(s)
		if err != nil {
			t.Fatalf("parseDecorrelation(%q): %v", s, err)
		}
		if got != want {
			t.Fatalf("parseDecorrelation(%q): got %d want %d", s, got, want)
		}
	}
	if _, err := parseDecorrelation("bogus"); err == nil {
		t.Fatal("expected error for unknown decorrelation mode")
	}
}

func TestPresetRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	want := Preset{Name: "gamescreens", Format: "bc1", Decorrelation: "v1", SplitColour: true}
	if err := appendPreset(path, want); err != nil {
		t.Fatal(err)
	}

	presets, err := loadPresets(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(presets) != 1 || presets[0] != want {
		t.Fatalf("got %+v want [%+v]", presets, want)
	}

	got, err := findPreset(presets, "gamescreens")
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("findPreset: got %+v want %+v", got, want)
	}

	if _, err := findPreset(presets, "missing"); err == nil {
		t.Fatal("expected error for missing preset name")
	}
}

func TestPresetAppendTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	first := Preset{Name: "a", Format: "bc1", Decorrelation: "none"}
	second := Preset{Name: "b", Format: "bc3", Decorrelation: "v2", SplitColour: true, SplitAlpha: true}
	if err := appendPreset(path, first); err != nil {
		t.Fatal(err)
	}
	if err := appendPreset(path, second); err != nil {
		t.Fatal(err)
	}
	presets, err := loadPresets(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	if _, err := loadPresets(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing preset file")
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"transform", "untransform", "autotune", "inspect"} {
		if !names[want] {
			t.Fatalf("missing subcommand %q", want)
		}
	}
}

func TestDecorrelationName(t *testing.T) {
	cases := map[uint8]string{0: "none", 1: "v1", 2: "v2", 3: "v3"}
	for mode, want := range cases {
		if got := decorrelationName(mode); got != want {
			t.Fatalf("decorrelationName(%d): got %q want %q", mode, got, want)
		}
	}
}
