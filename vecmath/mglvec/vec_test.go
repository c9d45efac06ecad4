package mglvec_test

import (
	"math"
	"testing"

	"github.com/hajimehoshi/go-halfedge/vecmath/geovec"
	"github.com/hajimehoshi/go-halfedge/vecmath/mglvec"
)

const eps = 1e-12

func TestAffine2(t *testing.T) {
	var a mglvec.Affine2
	move := a.FromTranslation(mglvec.Vec2{3, 4})
	p := mglvec.Vec2{1, 1}
	if got, want := move.Apply(p), (mglvec.Vec2{4, 5}); !got.ApproxEqual(want, eps) {
		t.Errorf("Apply: got %v, want %v", got, want)
	}
	if got := move.ApplyVec(p); !got.ApproxEqual(p, eps) {
		t.Errorf("ApplyVec: got %v, want %v", got, p)
	}
	scale := a.FromScale(mglvec.Vec2{2, 3})
	if got, want := scale.Chain(move).Apply(p), (mglvec.Vec2{8, 15}); !got.ApproxEqual(want, eps) {
		t.Errorf("scale after move: got %v, want %v", got, want)
	}
	rot := a.FromRotationArc(mglvec.Vec2{1, 0}, mglvec.Vec2{0, 2})
	if got, want := rot.Apply(mglvec.Vec2{2, 0}), (mglvec.Vec2{0, 2}); !got.ApproxEqual(want, eps) {
		t.Errorf("rotation: got %v, want %v", got, want)
	}
}

func TestAffine3(t *testing.T) {
	var a mglvec.Affine3
	move := a.FromTranslation(mglvec.Vec3{1, 2, 3})
	scale := a.FromScale(mglvec.Vec3{2, 2, 2})
	p := mglvec.Vec3{1, 1, 1}
	if got, want := move.Chain(scale).Apply(p), (mglvec.Vec3{3, 4, 5}); !got.ApproxEqual(want, eps) {
		t.Errorf("move after scale: got %v, want %v", got, want)
	}
	if got := move.ApplyVec(p); !got.ApproxEqual(p, eps) {
		t.Errorf("ApplyVec: got %v, want %v", got, p)
	}
	from, to := mglvec.Vec3{1, 0, 0}, mglvec.Vec3{0, 0, 5}
	if got := a.FromRotationArc(from, to).ApplyVec(from); !got.ApproxEqual(to.Normalize(), 1e-9) {
		t.Errorf("rotation: got %v, want %v", got, to.Normalize())
	}
}

func TestVec2(t *testing.T) {
	var zero mglvec.Vec2
	if got := zero.Normalize(); !got.IsZero() {
		t.Errorf("Normalize of zero: got %v", got)
	}
	a, b := mglvec.Vec2{1, 0}, mglvec.Vec2{0, 1}
	if got := a.PerpDot(b); got != 1 {
		t.Errorf("PerpDot: got %v, want 1", got)
	}
	if got := zero.AngleTri(a, b); math.Abs(got-math.Pi/2) > eps {
		t.Errorf("AngleTri: got %v, want pi/2", got)
	}
	if got, want := a.Lerp(b, 0.5), (mglvec.Vec2{0.5, 0.5}); got != want {
		t.Errorf("Lerp: got %v, want %v", got, want)
	}
}

func TestApproxEqual(t *testing.T) {
	cases := []struct {
		a, b [3]float64
		eps  float64
		want bool
	}{
		{[3]float64{1.2246467991473515e-16, 2, 0}, [3]float64{0, 2, 0}, 1e-12, true},
		{[3]float64{0, 0, 2.220446049250313e-16}, [3]float64{0, 0, 0}, 1e-12, true},
		{[3]float64{1e-6, 0, 0}, [3]float64{0, 0, 0}, 1e-12, false},
		{[3]float64{1000, 1000, 1000}, [3]float64{1000.5, 1000, 1000}, 0.5, true},
		{[3]float64{1000, 1000, 1000}, [3]float64{1000.6, 1000, 1000}, 0.5, false},
		{[3]float64{-3, 4, 5}, [3]float64{-3, 4, 5}, 0, true},
	}
	for _, c := range cases {
		a2, b2 := mglvec.Vec2{c.a[0], c.a[1]}, mglvec.Vec2{c.b[0], c.b[1]}
		if got := a2.ApproxEqual(b2, c.eps); got != c.want {
			t.Errorf("Vec2 %v ~ %v (eps %g): got %v, want %v", a2, b2, c.eps, got, c.want)
		}
		a3, b3 := mglvec.Vec3(c.a), mglvec.Vec3(c.b)
		if got := a3.ApproxEqual(b3, c.eps); got != c.want {
			t.Errorf("Vec3 %v ~ %v (eps %g): got %v, want %v", a3, b3, c.eps, got, c.want)
		}
		// Both backends agree.
		if got := geovec.Vec3(c.a).ApproxEqual(geovec.Vec3(c.b), c.eps); got != c.want {
			t.Errorf("geovec %v ~ %v (eps %g): got %v, want %v", c.a, c.b, c.eps, got, c.want)
		}
	}
}

func TestPayload3dTransform(t *testing.T) {
	var a mglvec.Affine3
	p := mglvec.P3(1, 0, 0)
	p.Normal = mglvec.Vec3{0, 0, 1}
	q := p.Transform(a.FromScale(mglvec.Vec3{2, 2, 2}).Chain(a.FromTranslation(mglvec.Vec3{0, 1, 0})))
	if got, want := q.Position, (mglvec.Vec3{2, 2, 0}); !got.ApproxEqual(want, eps) {
		t.Errorf("position: got %v, want %v", got, want)
	}
	if got, want := q.Normal, (mglvec.Vec3{0, 0, 1}); !got.ApproxEqual(want, eps) {
		t.Errorf("normal: got %v, want %v", got, want)
	}
}
