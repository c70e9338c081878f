// Package features holds containers for training data. DenseFeatures is
// generic over the scalar type and is registered in the factory under one
// class name with a primitive-type tag per instantiation.
package features

import (
	"fmt"

	"github.com/heron-ml/heron/core/object"
)

// Float is the scalar constraint for dense feature matrices.
type Float interface {
	~float32 | ~float64
}

// DenseFeatures stores one feature vector per row.
type DenseFeatures[F Float] struct {
	object.Base
	rows [][]F
	dim  int
}

// NewDenseFeatures returns an empty container.
func NewDenseFeatures[F Float]() *DenseFeatures[F] {
	return &DenseFeatures[F]{Base: object.NewBase("DenseFeatures")}
}

// Append adds a vector. All vectors must share the dimension of the first
// one appended.
func (f *DenseFeatures[F]) Append(v []F) error {
	if len(f.rows) == 0 {
		f.dim = len(v)
	} else if len(v) != f.dim {
		return fmt.Errorf("features: vector has dimension %d, want %d", len(v), f.dim)
	}
	row := make([]F, len(v))
	copy(row, v)
	f.rows = append(f.rows, row)
	return nil
}

// NumVectors returns the number of stored vectors.
func (f *DenseFeatures[F]) NumVectors() int { return len(f.rows) }

// Dim returns the vector dimension, 0 while empty.
func (f *DenseFeatures[F]) Dim() int { return f.dim }

// Vector returns the i-th stored vector. The returned slice is owned by the
// container.
func (f *DenseFeatures[F]) Vector(i int) []F { return f.rows[i] }
