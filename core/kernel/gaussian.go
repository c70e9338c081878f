package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/heron-ml/heron/core/object"
)

// GaussianKernel is the RBF kernel k(x,y) = exp(-||x-y||^2 / width).
type GaussianKernel struct {
	object.Base
	Width float64 `json:"width"`
}

// NewGaussianKernel returns a Gaussian kernel with the given width. A
// non-positive width falls back to 1.
func NewGaussianKernel(width float64) *GaussianKernel {
	if width <= 0 {
		width = 1
	}
	return &GaussianKernel{Base: object.NewBase("GaussianKernel"), Width: width}
}

func (k *GaussianKernel) Compute(x, y []float64) float64 {
	d := floats.Distance(x, y, 2)
	return math.Exp(-d * d / k.Width)
}
