// Package zstdestimator provides a real-compressor Estimator
// implementation that scores candidate settings by actually running
// Zstandard over the transformed region (spec.md §4.7's "real-compressor
// estimator (call actual Zstd with level N, return produced size)").
//
// This is a reference implementation exercising the auto-tuner's
// Estimator contract, not part of the specified core: spec.md §1 treats
// concrete estimator implementations as an out-of-scope external
// collaborator.
package zstdestimator

import (
	"bytes"

	"github.com/klauspost/compress/zstd"

	"github.com/blockforge/dxtlt/estimator"
)

// Estimator compresses each candidate with klauspost/compress/zstd at a
// fixed level and reports the number of bytes produced.
type Estimator struct {
	encoder *zstd.Encoder
}

// New constructs an Estimator at the given zstd compression level. A
// lower level (e.g. zstd.SpeedFastest) trades estimation accuracy for
// auto-tune throughput, matching the tradeoff spec.md §4.6 describes for
// the "ZStandard level 1 estimator" mentioned in the original design.
func New(level zstd.EncoderLevel) (*Estimator, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, err
	}
	return &Estimator{encoder: enc}, nil
}

// Close releases the underlying zstd encoder's resources.
func (e *Estimator) Close() error {
	return e.encoder.Close()
}

// Capabilities reports that this estimator ignores DataType: zstd scores
// purely on byte content, with no texture-specific specialization.
func (e *Estimator) Capabilities() estimator.Capabilities {
	return estimator.Capabilities{DataTypeAware: false}
}

// MaxCompressedSize returns 0: klauspost/compress/zstd's EncodeAll
// manages its own output buffer growth, so no caller-provided scratch is
// required.
func (e *Estimator) MaxCompressedSize(int) (int, error) {
	return 0, nil
}

// EstimateCompressedSize compresses data and returns the number of bytes
// produced. scratch is unused (see MaxCompressedSize).
func (e *Estimator) EstimateCompressedSize(data []byte, _ estimator.DataType, _ []byte) (int, error) {
	var buf bytes.Buffer
	buf.Grow(len(data) / 2)
	compressed := e.encoder.EncodeAll(data, buf.Bytes())
	return len(compressed), nil
}
