package main

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blockforge/dxtlt/bc1"
	"github.com/blockforge/dxtlt/bc2"
	"github.com/blockforge/dxtlt/bc3"
	"github.com/blockforge/dxtlt/estimator"
	"github.com/blockforge/dxtlt/estimator/statistical"
	"github.com/blockforge/dxtlt/estimator/zstdestimator"
)

// loggingEstimator wraps an estimator.Estimator to emit one zap log line
// per EstimateCompressedSize call, giving -verbose users the trial-by-
// trial auto-tune visibility SPEC_FULL.md's ambient-logging section
// calls for without instrumenting the library's own internal/autotune
// engine (which, like every other core package, never logs).
type loggingEstimator struct {
	estimator.Estimator
	log   *zap.Logger
	trial int
}

func (e *loggingEstimator) EstimateCompressedSize(data []byte, dt estimator.DataType, scratch []byte) (int, error) {
	e.trial++
	size, err := e.Estimator.EstimateCompressedSize(data, dt, scratch)
	if err != nil {
		e.log.Warn("auto-tune trial failed", zap.Int("trial", e.trial), zap.Error(err))
		return size, err
	}
	e.log.Debug("auto-tune trial",
		zap.Int("trial", e.trial),
		zap.String("data_type", dt.String()),
		zap.Int("input_bytes", len(data)),
		zap.Int("estimated_bytes", size),
	)
	return size, err
}

func newAutotuneCmd(verbose *bool) *cobra.Command {
	f := &settingsFlags{}
	var estimatorName string
	var comprehensive bool
	var zstdLevel int
	var savePreset, presetName string

	cmd := &cobra.Command{
		Use:   "autotune",
		Short: "Search BCn transform settings for the smallest estimated compressed size",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(f.format)
			if err != nil {
				return err
			}

			log, err := newLogger(*verbose)
			if err != nil {
				return fmt.Errorf("dxtltcli: building logger: %w", err)
			}
			defer log.Sync()

			est, closeEst, err := buildEstimator(estimatorName, zstdLevel)
			if err != nil {
				return err
			}
			if closeEst != nil {
				defer closeEst()
			}
			wrapped := &loggingEstimator{Estimator: est, log: log}

			input, err := os.ReadFile(f.in)
			if err != nil {
				return fmt.Errorf("dxtltcli: reading input: %w", err)
			}
			output := make([]byte, len(input))

			preset, err := runAutotune(format, input, output, wrapped, comprehensive)
			if err != nil {
				return err
			}
			log.Info("auto-tune finished", zap.Any("settings", preset))

			if err := os.WriteFile(f.out, output, 0o644); err != nil {
				return fmt.Errorf("dxtltcli: writing output: %w", err)
			}
			if savePreset != "" {
				if presetName == "" {
					return fmt.Errorf("dxtltcli: --preset-name is required with --save-preset")
				}
				preset.Name = presetName
				preset.Format = string(format)
				if err := appendPreset(savePreset, preset); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.format, "format", "", "block format: bc1, bc2, or bc3 (required)")
	cmd.Flags().StringVar(&f.in, "in", "", "input file (required)")
	cmd.Flags().StringVar(&f.out, "out", "", "output file (required)")
	cmd.Flags().StringVar(&estimatorName, "estimator", "statistical", "estimator backend: statistical or zstd")
	cmd.Flags().IntVar(&zstdLevel, "zstd-level", 3, "zstd compression level (only with --estimator zstd)")
	cmd.Flags().BoolVar(&comprehensive, "comprehensive", false, "search all legal settings instead of the fast subset")
	cmd.Flags().StringVar(&savePreset, "save-preset", "", "append the winning settings as a named preset to this YAML file")
	cmd.Flags().StringVar(&presetName, "preset-name", "", "name to save the winning settings under")
	cmd.MarkFlagRequired("format")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	return cmd
}

func buildEstimator(name string, zstdLevel int) (estimator.Estimator, func(), error) {
	switch name {
	case "statistical", "":
		return statistical.New(), nil, nil
	case "zstd":
		e, err := zstdestimator.New(zstdEncoderLevel(zstdLevel))
		if err != nil {
			return nil, nil, fmt.Errorf("dxtltcli: constructing zstd estimator: %w", err)
		}
		return e, func() { _ = e.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("dxtltcli: unknown estimator %q (want statistical or zstd)", name)
	}
}

func runAutotune(format Format, input, output []byte, est estimator.Estimator, comprehensive bool) (Preset, error) {
	switch format {
	case FormatBC1:
		s, err := bc1.TransformAuto(input, output, est, comprehensive)
		if err != nil {
			return Preset{}, err
		}
		return Preset{Decorrelation: decorrelationName(uint8(s.DecorrelationMode)), SplitColour: s.SplitColourEndpoints}, nil
	case FormatBC2:
		s, err := bc2.TransformAuto(input, output, est, comprehensive)
		if err != nil {
			return Preset{}, err
		}
		return Preset{Decorrelation: decorrelationName(uint8(s.DecorrelationMode)), SplitColour: s.SplitColourEndpoints}, nil
	case FormatBC3:
		s, err := bc3.TransformAuto(input, output, est, comprehensive)
		if err != nil {
			return Preset{}, err
		}
		return Preset{
			Decorrelation: decorrelationName(uint8(s.DecorrelationMode)),
			SplitColour:   s.SplitColourEndpoints,
			SplitAlpha:    s.SplitAlphaEndpoints,
		}, nil
	default:
		return Preset{}, fmt.Errorf("dxtltcli: unhandled format %q", format)
	}
}

func zstdEncoderLevel(level int) zstd.EncoderLevel {
	return zstd.EncoderLevelFromZstd(level)
}

func decorrelationName(mode uint8) string {
	switch mode {
	case 1:
		return "v1"
	case 2:
		return "v2"
	case 3:
		return "v3"
	default:
		return "none"
	}
}
