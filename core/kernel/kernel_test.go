package kernel

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

func TestGaussianKernel(t *testing.T) {
	k := NewGaussianKernel(2)
	x := []float64{1, 2, 3}
	y := []float64{2, 2, 4}

	if got := k.Compute(x, x); !almostEqual(got, 1) {
		t.Fatalf("k(x,x) = %v, want 1", got)
	}
	if k.Compute(x, y) != k.Compute(y, x) {
		t.Fatal("kernel must be symmetric")
	}
	// ||x-y||^2 = 2, width 2.
	if got := k.Compute(x, y); !almostEqual(got, math.Exp(-1)) {
		t.Fatalf("k(x,y) = %v, want %v", got, math.Exp(-1))
	}
}

func TestGaussianKernel_WidthFallback(t *testing.T) {
	if k := NewGaussianKernel(-1); k.Width != 1 {
		t.Fatalf("expected width fallback to 1, got %v", k.Width)
	}
}

func TestLinearKernel(t *testing.T) {
	k := NewLinearKernel()
	if got := k.Compute([]float64{1, 2, 3}, []float64{4, 5, 6}); got != 32 {
		t.Fatalf("dot = %v, want 32", got)
	}
}

func TestPolyKernel(t *testing.T) {
	k := NewPolyKernel(2, 1, 1)
	// (1*2 + 1)^2 = 9
	if got := k.Compute([]float64{1, 1}, []float64{1, 1}); !almostEqual(got, 9) {
		t.Fatalf("poly = %v, want 9", got)
	}
	if k := NewPolyKernel(0, 0, 0); k.Degree != 2 || k.Gamma != 1 {
		t.Fatalf("expected defaults, got degree=%d gamma=%v", k.Degree, k.Gamma)
	}
}
