// Package machine provides trainable models over dense float64 features.
package machine

import "github.com/heron-ml/heron/core/object"

// Machine is a model that can be fitted on labelled vectors and applied to
// new ones.
type Machine interface {
	object.Object
	// Train fits the model. X holds one sample per row, y one target per
	// sample.
	Train(X [][]float64, y []float64) error
	// Apply evaluates the fitted model on a single sample.
	Apply(x []float64) float64
}

// Classifier is a machine producing discrete ±1 labels. Not every machine
// is one: regressors such as LinearMachine only satisfy Machine.
type Classifier interface {
	Machine
	Classify(x []float64) int
}
