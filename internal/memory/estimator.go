// Package memory estimates the memory an inference deployment needs for a
// model of a given size.
package memory

import "math"

// DefaultOverhead is the factor applied to raw weight size to account for
// activations and runtime buffers during inference.
const DefaultOverhead = 1.2

// Estimator maps a raw fp32 weight size in bytes to required bytes.
type Estimator func(sizeBytes int64) int64

// Identity returns the size unchanged.
func Identity(sizeBytes int64) int64 { return sizeBytes }

// WithOverhead returns an Estimator that scales the size by factor.
// A non-positive factor selects DefaultOverhead. Results saturate at
// math.MaxInt64 instead of wrapping.
func WithOverhead(factor float64) Estimator {
	if factor <= 0 {
		factor = DefaultOverhead
	}
	return func(sizeBytes int64) int64 {
		if sizeBytes <= 0 {
			return 0
		}
		scaled := math.Ceil(float64(sizeBytes) * factor)
		if scaled >= math.MaxInt64 {
			return math.MaxInt64
		}
		return int64(scaled)
	}
}
