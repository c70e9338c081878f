package machine

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/heron-ml/heron/core/object"
)

// LinearMachine fits y = w·x + b by least squares. It is a regressor and
// deliberately does not implement Classifier.
type LinearMachine struct {
	object.Base
	weights []float64
	bias    float64
}

func NewLinearMachine() *LinearMachine {
	return &LinearMachine{Base: object.NewBase("LinearMachine")}
}

// Train solves the least-squares problem over X augmented with a bias
// column.
func (m *LinearMachine) Train(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("linear machine: no training samples")
	}
	if len(X) != len(y) {
		return fmt.Errorf("linear machine: %d samples but %d targets", len(X), len(y))
	}
	dim := len(X[0])
	a := mat.NewDense(len(X), dim+1, nil)
	for i, row := range X {
		if len(row) != dim {
			return fmt.Errorf("linear machine: sample %d has dimension %d, want %d", i, len(row), dim)
		}
		for j, v := range row {
			a.Set(i, j, v)
		}
		a.Set(i, dim, 1)
	}

	var qr mat.QR
	qr.Factorize(a)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, mat.NewVecDense(len(y), y)); err != nil {
		return fmt.Errorf("linear machine: solve: %w", err)
	}
	m.weights = make([]float64, dim)
	for j := 0; j < dim; j++ {
		m.weights[j] = sol.AtVec(j)
	}
	m.bias = sol.AtVec(dim)
	return nil
}

// Apply evaluates w·x + b. An untrained or dimension-mismatched machine
// returns 0.
func (m *LinearMachine) Apply(x []float64) float64 {
	if len(m.weights) == 0 || len(x) != len(m.weights) {
		return 0
	}
	return floats.Dot(m.weights, x) + m.bias
}
