package kernel

import (
	"gonum.org/v1/gonum/floats"

	"github.com/heron-ml/heron/core/object"
)

// LinearKernel is the dot product kernel k(x,y) = x·y.
type LinearKernel struct {
	object.Base
}

func NewLinearKernel() *LinearKernel {
	return &LinearKernel{Base: object.NewBase("LinearKernel")}
}

func (k *LinearKernel) Compute(x, y []float64) float64 {
	return floats.Dot(x, y)
}
