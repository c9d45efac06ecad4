package vecmath_test

import (
	"testing"

	"github.com/hajimehoshi/go-halfedge/vecmath"
)

func TestEpsilon(t *testing.T) {
	if got := vecmath.Epsilon[float32](); got != 1.1920929e-07 {
		t.Fatalf("float32: got %g", got)
	}
	if got := vecmath.Epsilon[float64](); got != 2.220446049250313e-16 {
		t.Fatalf("float64: got %g", got)
	}
	if e := vecmath.Epsilon[float64](); 1+e == 1 || 1+e/2 != 1 {
		t.Fatalf("float64 epsilon is not the machine epsilon")
	}
}

func TestIsAbout(t *testing.T) {
	cases := []struct {
		a, b, eps float64
		want      bool
	}{
		{1, 1, 0, true},
		{1, 1.05, 0.1, true},
		{1, 1.2, 0.1, false},
		{-1, 1, 1, false},
	}
	for _, c := range cases {
		if got := vecmath.IsAbout(c.a, c.b, c.eps); got != c.want {
			t.Errorf("IsAbout(%g, %g, %g): got %v, want %v", c.a, c.b, c.eps, got, c.want)
		}
	}
}
