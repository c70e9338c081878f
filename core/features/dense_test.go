package features

import "testing"

func TestDenseFeatures(t *testing.T) {
	f := NewDenseFeatures[float64]()
	if f.NumVectors() != 0 || f.Dim() != 0 {
		t.Fatal("new container must be empty")
	}
	if err := f.Append([]float64{1, 2, 3}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := f.Append([]float64{4, 5, 6}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := f.Append([]float64{1}); err == nil {
		t.Fatal("expected dimension error")
	}
	if f.NumVectors() != 2 || f.Dim() != 3 {
		t.Fatalf("unexpected shape %dx%d", f.NumVectors(), f.Dim())
	}
	if f.Vector(1)[2] != 6 {
		t.Fatalf("unexpected element %v", f.Vector(1)[2])
	}
}

func TestDenseFeatures_Float32(t *testing.T) {
	f := NewDenseFeatures[float32]()
	if err := f.Append([]float32{1, 2}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if f.Name() != "DenseFeatures" {
		t.Fatalf("unexpected class name %s", f.Name())
	}
}

func TestDenseFeatures_CopiesInput(t *testing.T) {
	f := NewDenseFeatures[float64]()
	v := []float64{1, 2}
	if err := f.Append(v); err != nil {
		t.Fatalf("append: %v", err)
	}
	v[0] = 99
	if f.Vector(0)[0] != 1 {
		t.Fatal("container must copy appended vectors")
	}
}
