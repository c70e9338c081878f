package machine

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/heron-ml/heron/core/object"
)

// Perceptron is a binary ±1 classifier trained with the classic mistake-
// driven update rule.
type Perceptron struct {
	object.Base
	LearnRate float64 `json:"learn_rate"`
	MaxEpochs int     `json:"max_epochs"`

	weights []float64
	bias    float64
}

// NewPerceptron returns a perceptron with default learning rate 0.1 and 100
// epochs.
func NewPerceptron() *Perceptron {
	return &Perceptron{Base: object.NewBase("Perceptron"), LearnRate: 0.1, MaxEpochs: 100}
}

// Train runs mistake-driven updates until an epoch is error free or
// MaxEpochs is reached. Labels must be ±1.
func (p *Perceptron) Train(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("perceptron: no training samples")
	}
	if len(X) != len(y) {
		return fmt.Errorf("perceptron: %d samples but %d labels", len(X), len(y))
	}
	dim := len(X[0])
	for i, lab := range y {
		if lab != 1 && lab != -1 {
			return fmt.Errorf("perceptron: label %v at sample %d is not ±1", lab, i)
		}
		if len(X[i]) != dim {
			return fmt.Errorf("perceptron: sample %d has dimension %d, want %d", i, len(X[i]), dim)
		}
	}

	p.weights = make([]float64, dim)
	p.bias = 0
	for epoch := 0; epoch < p.MaxEpochs; epoch++ {
		mistakes := 0
		for i, row := range X {
			if float64(p.classify(row)) != y[i] {
				floats.AddScaled(p.weights, p.LearnRate*y[i], row)
				p.bias += p.LearnRate * y[i]
				mistakes++
			}
		}
		if mistakes == 0 {
			return nil
		}
	}
	return nil
}

// Apply returns the signed margin w·x + b.
func (p *Perceptron) Apply(x []float64) float64 {
	if len(p.weights) == 0 || len(x) != len(p.weights) {
		return 0
	}
	return floats.Dot(p.weights, x) + p.bias
}

// Classify returns the predicted ±1 label.
func (p *Perceptron) Classify(x []float64) int { return p.classify(x) }

func (p *Perceptron) classify(x []float64) int {
	if p.Apply(x) >= 0 {
		return 1
	}
	return -1
}
