package factory

import (
	"errors"
	"testing"

	"github.com/heron-ml/heron/core/object"
)

type fakeKernel struct {
	object.Base
	Width float64 `json:"width"`
}

func (fakeKernel) Compute(x, y []float64) float64 { return 0 }

type fakeMachine struct {
	object.Base
}

type similarity interface {
	Compute(x, y []float64) float64
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	MustRegister(reg, "GaussianKernel", object.PTFloat64, func() object.Object {
		return &fakeKernel{Base: object.NewBase("GaussianKernel"), Width: 1}
	})
	MustRegister(reg, "GaussianKernel", object.PTFloat32, func() object.Object {
		return &fakeKernel{Base: object.NewBase("GaussianKernel"), Width: 1}
	})
	MustRegister(reg, "LinearMachine", object.PTNotGeneric, func() object.Object {
		return &fakeMachine{Base: object.NewBase("LinearMachine")}
	})
	return reg
}

func TestRegistry_Register(t *testing.T) {
	reg := newTestRegistry(t)

	err := reg.Register("GaussianKernel", object.PTFloat64, func() object.Object { return nil })
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err := reg.Register("", object.PTFloat64, func() object.Object { return nil }); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := reg.Register("Thing", object.PTNotGeneric, nil); err == nil {
		t.Fatal("expected error for nil constructor")
	}
}

func TestRegistry_Create(t *testing.T) {
	reg := newTestRegistry(t)

	a := reg.Create("GaussianKernel", object.PTFloat64)
	if a == nil {
		t.Fatal("expected instance for registered key")
	}
	if a.Name() != "GaussianKernel" {
		t.Fatalf("unexpected name %s", a.Name())
	}

	// Each hit allocates an independent instance.
	b := reg.Create("GaussianKernel", object.PTFloat64)
	if a.UID() == b.UID() {
		t.Fatal("expected fresh instance per create")
	}

	if got := reg.Create("GaussianKernel", object.PTInt32); got != nil {
		t.Fatal("expected nil for unregistered tag variant")
	}
	if got := reg.Create("NoSuchClass", object.PTNotGeneric); got != nil {
		t.Fatal("expected nil for unknown name")
	}
	if got := reg.Create("", object.PTNotGeneric); got != nil {
		t.Fatal("expected nil for empty name")
	}
}

func TestRegistry_AvailableObjects(t *testing.T) {
	reg := newTestRegistry(t)

	names := reg.AvailableObjects()
	want := []string{"GaussianKernel", "LinearMachine"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}

	again := reg.AvailableObjects()
	for i := range names {
		if names[i] != again[i] {
			t.Fatal("enumeration must be stable across calls")
		}
	}
}

func TestRegistry_FindCorrectName(t *testing.T) {
	reg := newTestRegistry(t)

	if got := reg.FindCorrectName("GaussianKernl"); got != "GaussianKernel" {
		t.Fatalf("expected GaussianKernel, got %s", got)
	}
	// A registered name suggests itself.
	if got := reg.FindCorrectName("LinearMachine"); got != "LinearMachine" {
		t.Fatalf("expected LinearMachine, got %s", got)
	}
	if got := NewRegistry().FindCorrectName("anything"); got != "" {
		t.Fatalf("expected empty suggestion from empty registry, got %s", got)
	}
}

func TestRegistry_LookupDoesNotAllocate(t *testing.T) {
	reg := NewRegistry()
	calls := 0
	MustRegister(reg, "Counting", object.PTNotGeneric, func() object.Object {
		calls++
		return &fakeMachine{Base: object.NewBase("Counting")}
	})

	if _, ok := reg.Lookup("Counting", object.PTNotGeneric); !ok {
		t.Fatal("expected lookup hit")
	}
	if calls != 0 {
		t.Fatal("lookup must not invoke the constructor")
	}
	reg.Create("Counting", object.PTNotGeneric)
	if calls != 1 {
		t.Fatalf("expected exactly one allocation, got %d", calls)
	}
}
