// Package plugins wires the builtin algorithm classes into a factory
// registry. Registration is an explicit bootstrap step: nothing registers
// itself from init so startup ordering stays visible.
package plugins

import (
	"sync"

	"github.com/heron-ml/heron/core/factory"
)

var (
	defaultOnce sync.Once
	defaultReg  *factory.Registry
)

// NewRegistry builds a registry populated with the builtin catalog.
func NewRegistry(opts ...factory.Option) *factory.Registry {
	reg := factory.NewRegistry(opts...)
	RegisterBuiltins(reg)
	return reg
}

// Default returns the shared process-wide registry. It is built exactly
// once, on first use, and is read-only afterwards.
func Default() *factory.Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})
	return defaultReg
}
