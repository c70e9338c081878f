// Package kernel provides pairwise similarity functions over dense float64
// vectors.
package kernel

import "github.com/heron-ml/heron/core/object"

// Kernel computes a similarity between two feature vectors of equal length.
type Kernel interface {
	object.Object
	Compute(x, y []float64) float64
}
