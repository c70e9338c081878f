package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/heron-ml/heron/core/object"
)

// PolyKernel is the polynomial kernel k(x,y) = (gamma * x·y + coef0)^degree.
type PolyKernel struct {
	object.Base
	Degree int     `json:"degree"`
	Gamma  float64 `json:"gamma"`
	Coef0  float64 `json:"coef0"`
}

// NewPolyKernel returns a polynomial kernel. A degree below 1 falls back to
// 2, a non-positive gamma to 1.
func NewPolyKernel(degree int, gamma, coef0 float64) *PolyKernel {
	if degree < 1 {
		degree = 2
	}
	if gamma <= 0 {
		gamma = 1
	}
	return &PolyKernel{Base: object.NewBase("PolyKernel"), Degree: degree, Gamma: gamma, Coef0: coef0}
}

func (k *PolyKernel) Compute(x, y []float64) float64 {
	return math.Pow(k.Gamma*floats.Dot(x, y)+k.Coef0, float64(k.Degree))
}
