// Package statistical provides a fast, approximate Estimator that models
// a general-purpose LZ+entropy coder without actually running one:
// spec.md §4.7's "statistical estimator (model LZ-match count and
// histogram entropy, return a weighted sum)". It trades accuracy for
// throughput relative to estimator/zstdestimator (see the "LTU
// estimator: ~641 MiB/s" figure the original design quotes for the
// equivalent Rust estimator).
//
// Reference implementation only — concrete estimators are an
// out-of-scope external collaborator per spec.md §1.
package statistical

import (
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/blockforge/dxtlt/estimator"
)

// Estimator scores data using a byte-histogram entropy term plus an
// approximate LZ-match-count term computed via a small rolling hash
// chain (4-byte shingles, matching zstd's minimum match length).
type Estimator struct {
	// HashBits sizes the hash-chain table (2^HashBits entries). Larger
	// tables find more matches at the cost of more memory; 16 is a
	// reasonable default for blocks in the tens-of-KiB range this
	// estimator is expected to see (one BC1/BC3 colour-endpoint region).
	HashBits uint
}

// New constructs an Estimator with a default 16-bit hash table.
func New() *Estimator {
	return &Estimator{HashBits: 16}
}

// Capabilities reports that this estimator ignores DataType: the model
// is purely statistical, with no per-texture-component specialization.
func (e *Estimator) Capabilities() estimator.Capabilities {
	return estimator.Capabilities{DataTypeAware: false}
}

// MaxCompressedSize returns 0: this estimator needs no scratch buffer.
func (e *Estimator) MaxCompressedSize(int) (int, error) {
	return 0, nil
}

const minMatchLen = 4

// EstimateCompressedSize returns a predicted compressed size computed as
// a weighted sum of a zeroth-order entropy estimate and an approximate
// LZ match count, the same two signals the spec's "statistical
// estimator" description names.
func (e *Estimator) EstimateCompressedSize(data []byte, _ estimator.DataType, _ []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	entropyBits := byteEntropyBits(data)
	matchedBytes := e.approximateMatchedBytes(data)

	literalBytes := len(data) - matchedBytes
	literalCost := float64(literalBytes) * entropyBits / 8
	// Matched bytes are charged 2 bytes of coded length/distance overhead
	// per minMatchLen bytes covered, so the cost grows with total matched
	// length rather than with the number of matches — a coarse stand-in
	// for a real LZ coder's length/distance codes.
	matchCost := float64(matchedBytes) / minMatchLen * 2

	total := int(math.Ceil(literalCost + matchCost))
	if total > len(data) {
		total = len(data)
	}
	return total, nil
}

// byteEntropyBits returns the zeroth-order Shannon entropy, in bits per
// byte, of data's byte value histogram.
func byteEntropyBits(data []byte) float64 {
	var hist [256]int
	for _, b := range data {
		hist[b]++
	}
	n := float64(len(data))
	var entropy float64
	for _, c := range hist {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// approximateMatchedBytes walks data with a 4-byte rolling hash chain
// and counts bytes covered by a repeat of an earlier 4-byte shingle,
// approximating what an LZ matcher would find. This is a one-pass greedy
// approximation, not a real match finder: it never backtracks and
// extends matches only forward, trading recall for O(n) throughput.
func (e *Estimator) approximateMatchedBytes(data []byte) int {
	if len(data) < minMatchLen {
		return 0
	}
	tableSize := 1 << e.HashBits
	mask := uint64(tableSize - 1)
	table := make([]int32, tableSize)
	for i := range table {
		table[i] = -1
	}

	matched := 0
	i := 0
	for i+minMatchLen <= len(data) {
		h := xxhash.Sum64(data[i:i+minMatchLen]) & mask
		prev := table[h]
		table[h] = int32(i)
		if prev >= 0 {
			matchLen := extendMatch(data, int(prev), i)
			if matchLen >= minMatchLen {
				matched += matchLen
				i += matchLen
				continue
			}
		}
		i++
	}
	return matched
}

func extendMatch(data []byte, a, b int) int {
	n := 0
	for b+n < len(data) && data[a+n] == data[b+n] {
		n++
	}
	return n
}
