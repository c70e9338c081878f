package distance

import (
	"gonum.org/v1/gonum/floats"

	"github.com/heron-ml/heron/core/object"
)

// EuclideanDistance is the L2 norm of x-y.
type EuclideanDistance struct {
	object.Base
}

func NewEuclideanDistance() *EuclideanDistance {
	return &EuclideanDistance{Base: object.NewBase("EuclideanDistance")}
}

func (EuclideanDistance) Compute(x, y []float64) float64 {
	return floats.Distance(x, y, 2)
}

// ManhattanDistance is the L1 norm of x-y.
type ManhattanDistance struct {
	object.Base
}

func NewManhattanDistance() *ManhattanDistance {
	return &ManhattanDistance{Base: object.NewBase("ManhattanDistance")}
}

func (ManhattanDistance) Compute(x, y []float64) float64 {
	return floats.Distance(x, y, 1)
}
