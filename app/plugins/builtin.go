package plugins

import (
	"github.com/heron-ml/heron/core/distance"
	"github.com/heron-ml/heron/core/factory"
	"github.com/heron-ml/heron/core/features"
	"github.com/heron-ml/heron/core/kernel"
	"github.com/heron-ml/heron/core/machine"
	"github.com/heron-ml/heron/core/object"
)

// RegisterBuiltins adds every builtin class to reg. It panics on duplicate
// registration, which would mean a broken catalog.
func RegisterBuiltins(reg *factory.Registry) {
	factory.MustRegister(reg, "GaussianKernel", object.PTFloat64, func() object.Object {
		return kernel.NewGaussianKernel(1)
	})
	factory.MustRegister(reg, "LinearKernel", object.PTFloat64, func() object.Object {
		return kernel.NewLinearKernel()
	})
	factory.MustRegister(reg, "PolyKernel", object.PTFloat64, func() object.Object {
		return kernel.NewPolyKernel(2, 1, 0)
	})

	factory.MustRegister(reg, "EuclideanDistance", object.PTFloat64, func() object.Object {
		return distance.NewEuclideanDistance()
	})
	factory.MustRegister(reg, "ManhattanDistance", object.PTFloat64, func() object.Object {
		return distance.NewManhattanDistance()
	})
	factory.MustRegister(reg, "CosineDistance", object.PTFloat64, func() object.Object {
		return distance.NewCosineDistance()
	})

	factory.MustRegister(reg, "LinearMachine", object.PTNotGeneric, func() object.Object {
		return machine.NewLinearMachine()
	})
	factory.MustRegister(reg, "Perceptron", object.PTNotGeneric, func() object.Object {
		return machine.NewPerceptron()
	})

	factory.MustRegister(reg, "DenseFeatures", object.PTFloat32, func() object.Object {
		return features.NewDenseFeatures[float32]()
	})
	factory.MustRegister(reg, "DenseFeatures", object.PTFloat64, func() object.Object {
		return features.NewDenseFeatures[float64]()
	})
}
