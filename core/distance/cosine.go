package distance

import (
	"gonum.org/v1/gonum/floats"

	"github.com/heron-ml/heron/core/object"
)

// CosineDistance is 1 - cos(x,y). Zero vectors are at distance 1 from
// everything.
type CosineDistance struct {
	object.Base
}

func NewCosineDistance() *CosineDistance {
	return &CosineDistance{Base: object.NewBase("CosineDistance")}
}

func (CosineDistance) Compute(x, y []float64) float64 {
	nx := floats.Norm(x, 2)
	ny := floats.Norm(y, 2)
	if nx == 0 || ny == 0 {
		return 1
	}
	return 1 - floats.Dot(x, y)/(nx*ny)
}
