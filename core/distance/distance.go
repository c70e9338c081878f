// Package distance provides dissimilarity measures over dense float64
// vectors.
package distance

import "github.com/heron-ml/heron/core/object"

// Distance computes a dissimilarity between two vectors of equal length.
type Distance interface {
	object.Object
	Compute(x, y []float64) float64
}
