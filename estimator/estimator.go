// Package estimator defines the size-estimation contract the auto-tuner
// (spec.md §4.6, C6) consumes to score candidate settings without
// running a full downstream entropy coder. This package specifies only
// the interface (spec.md §4.7, C7); concrete estimators live in
// sibling packages (zstdestimator, statistical) as reference
// implementations — spec.md treats concrete estimator implementations
// as an external collaborator of the core transform, supplied here
// because "both a real-compressor estimator ... and a statistical
// estimator ... are valid implementations; both are used in practice"
// (spec.md §4.7).
package estimator

// DataType tells an estimator what kind of bytes it is being asked to
// score, so an estimator that models texture statistics can specialize.
// Estimators that do not differentiate (Capabilities().DataTypeAware ==
// false) may ignore this and receive DataTypeGeneric.
type DataType uint8

const (
	DataTypeGeneric DataType = iota
	DataTypeBC1ColourEndpoints
	DataTypeBC2ColourEndpoints
	DataTypeBC3ColourEndpoints
	DataTypeBC3AlphaEndpoints
)

// String implements fmt.Stringer for log/CLI output.
func (d DataType) String() string {
	switch d {
	case DataTypeGeneric:
		return "generic"
	case DataTypeBC1ColourEndpoints:
		return "bc1-colour-endpoints"
	case DataTypeBC2ColourEndpoints:
		return "bc2-colour-endpoints"
	case DataTypeBC3ColourEndpoints:
		return "bc3-colour-endpoints"
	case DataTypeBC3AlphaEndpoints:
		return "bc3-alpha-endpoints"
	default:
		return "unknown"
	}
}

// Capabilities describes what an Estimator implementation actually does.
type Capabilities struct {
	// DataTypeAware is true if the estimator differentiates behaviour by
	// DataType. Callers of estimators that report false may pass
	// DataTypeGeneric everywhere without losing accuracy.
	DataTypeAware bool
}

// Estimator is any object that can predict the post-entropy-coding size
// of a byte sequence. Implementations are borrowed by the auto-tuner for
// the duration of one call and must not be used concurrently with that
// call (spec.md §5).
type Estimator interface {
	// Capabilities reports this estimator's feature set.
	Capabilities() Capabilities

	// MaxCompressedSize returns an upper bound on the scratch buffer
	// size this estimator may need to score lenBytes of input. Zero
	// means no scratch is needed.
	MaxCompressedSize(lenBytes int) (int, error)

	// EstimateCompressedSize predicts the compressed size of data,
	// tagged with dataType. scratch is the buffer obtained via
	// MaxCompressedSize and may be ignored by estimators that need none.
	EstimateCompressedSize(data []byte, dataType DataType, scratch []byte) (int, error)
}
