// Package object defines the common base of every algorithm class heron can
// instantiate by name. Concrete types embed Base and are produced by the
// factory registry; callers narrow them to the capability they need.
package object

import "github.com/google/uuid"

// Object is the capability set shared by every registered class.
type Object interface {
	// Name returns the registered class name, e.g. "GaussianKernel".
	Name() string
	// UID identifies this instance. Every factory invocation produces a
	// fresh instance with its own UID.
	UID() uuid.UUID
}

// Base carries the identity fields of an Object. Concrete classes embed it
// by value.
type Base struct {
	name string
	uid  uuid.UUID
}

// NewBase returns a Base for the given class name with a fresh instance UID.
func NewBase(name string) Base {
	return Base{name: name, uid: uuid.New()}
}

func (b Base) Name() string   { return b.name }
func (b Base) UID() uuid.UUID { return b.uid }
func (b Base) String() string { return b.name + "/" + b.uid.String() }
