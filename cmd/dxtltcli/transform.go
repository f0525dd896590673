package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockforge/dxtlt/bc1"
	"github.com/blockforge/dxtlt/bc2"
	"github.com/blockforge/dxtlt/bc3"
)

type settingsFlags struct {
	format        string
	decorrelation string
	splitColour   bool
	splitAlpha    bool
	in, out       string
}

func addSettingsFlags(cmd *cobra.Command, f *settingsFlags) {
	cmd.Flags().StringVar(&f.format, "format", "", "block format: bc1, bc2, or bc3 (required)")
	cmd.Flags().StringVar(&f.decorrelation, "decorrelation", "none", "colour decorrelation mode: none, v1, v2, v3")
	cmd.Flags().BoolVar(&f.splitColour, "split-colour", false, "split colour endpoints into two streams")
	cmd.Flags().BoolVar(&f.splitAlpha, "split-alpha", false, "split alpha endpoints into two streams (bc3 only)")
	cmd.Flags().StringVar(&f.in, "in", "", "input file (required)")
	cmd.Flags().StringVar(&f.out, "out", "", "output file (required)")
	cmd.MarkFlagRequired("format")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
}

// runTransform dispatches to the named format's TransformWithSettings
// (reverse=false) or UntransformWithSettings (reverse=true).
func runTransform(f *settingsFlags, reverse bool) error {
	format, err := parseFormat(f.format)
	if err != nil {
		return err
	}
	mode, err := parseDecorrelation(f.decorrelation)
	if err != nil {
		return err
	}

	input, err := os.ReadFile(f.in)
	if err != nil {
		return fmt.Errorf("dxtltcli: reading input: %w", err)
	}
	output := make([]byte, len(input))

	apply := func() error {
		switch format {
		case FormatBC1:
			s := bc1.Settings{DecorrelationMode: bc1.DecorrelationMode(mode), SplitColourEndpoints: f.splitColour}
			if reverse {
				return bc1.UntransformWithSettings(input, output, s)
			}
			return bc1.TransformWithSettings(input, output, s)
		case FormatBC2:
			s := bc2.Settings{DecorrelationMode: bc2.DecorrelationMode(mode), SplitColourEndpoints: f.splitColour}
			if reverse {
				return bc2.UntransformWithSettings(input, output, s)
			}
			return bc2.TransformWithSettings(input, output, s)
		case FormatBC3:
			s := bc3.Settings{
				DecorrelationMode:    bc3.DecorrelationMode(mode),
				SplitColourEndpoints: f.splitColour,
				SplitAlphaEndpoints:  f.splitAlpha,
			}
			if reverse {
				return bc3.UntransformWithSettings(input, output, s)
			}
			return bc3.TransformWithSettings(input, output, s)
		default:
			return fmt.Errorf("dxtltcli: unhandled format %q", format)
		}
	}

	if err := apply(); err != nil {
		return err
	}
	if err := os.WriteFile(f.out, output, 0o644); err != nil {
		return fmt.Errorf("dxtltcli: writing output: %w", err)
	}
	return nil
}

func newTransformCmd(_ *bool) *cobra.Command {
	f := &settingsFlags{}
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Apply a settings combination to a BCn byte stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(f, false)
		},
	}
	addSettingsFlags(cmd, f)
	return cmd
}

func newUntransformCmd(_ *bool) *cobra.Command {
	f := &settingsFlags{}
	cmd := &cobra.Command{
		Use:   "untransform",
		Short: "Reverse a settings combination previously applied with transform",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(f, true)
		},
	}
	addSettingsFlags(cmd, f)
	return cmd
}
