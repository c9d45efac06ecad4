package geovec_test

import (
	"testing"

	"github.com/hajimehoshi/go-halfedge"
	"github.com/hajimehoshi/go-halfedge/sweep"
	"github.com/hajimehoshi/go-halfedge/vecmath/geovec"
	"github.com/hajimehoshi/go-halfedge/vecmath/mglvec"
)

const eps = 1e-12

func TestRotationArc(t *testing.T) {
	var a geovec.Affine3
	cases := []struct {
		from, to geovec.Vec3
	}{
		{geovec.Vec3{1, 0, 0}, geovec.Vec3{0, 1, 0}},
		{geovec.Vec3{1, 1, 0}, geovec.Vec3{0, 0, 3}},
		{geovec.Vec3{1, 0, 0}, geovec.Vec3{2, 0, 0}},
		{geovec.Vec3{0, 0, 1}, geovec.Vec3{0, 0, -1}},
	}
	for _, c := range cases {
		r := a.FromRotationArc(c.from, c.to)
		got := r.ApplyVec(c.from.Normalize())
		if !got.ApproxEqual(c.to.Normalize(), eps) {
			t.Errorf("%v -> %v: got %v", c.from, c.to, got)
		}
	}
}

func TestChain(t *testing.T) {
	var a geovec.Affine3
	move := a.FromTranslation(geovec.Vec3{1, 2, 3})
	scale := a.FromScale(geovec.Vec3{2, 2, 2})
	p := geovec.Vec3{1, 1, 1}

	// The right-hand transform applies first.
	if got, want := scale.Chain(move).Apply(p), (geovec.Vec3{4, 6, 8}); !got.ApproxEqual(want, eps) {
		t.Errorf("scale after move: got %v, want %v", got, want)
	}
	if got, want := move.Chain(scale).Apply(p), (geovec.Vec3{3, 4, 5}); !got.ApproxEqual(want, eps) {
		t.Errorf("move after scale: got %v, want %v", got, want)
	}
	if got := move.ApplyVec(p); got != p {
		t.Errorf("translation moved a direction: %v", got)
	}
	if got := a.Identity().Chain(move).Apply(p); !got.ApproxEqual(move.Apply(p), eps) {
		t.Errorf("identity changed the transform: %v", got)
	}
}

func TestMesh(t *testing.T) {
	m := geovec.NewMesh()
	f := m.AddPolygon([]geovec.Payload{
		geovec.P(0, 0, 0), geovec.P(2, 0, 0), geovec.P(2, 2, 1), geovec.P(0, 2, 1),
	}, false)
	capFace := m.Extrude(m.Twin(m.Face(f).EdgeID()), geovec.Vec3{0, 0, 1}, true)
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	for v := range m.FaceVertices(capFace) {
		if p := m.Pos(v); p.Z() < 1 {
			t.Errorf("cap vertex %d at %v", v, p)
		}
	}
	for g := range m.Faces() {
		var tri sweep.Triangulation[halfedge.VertexID]
		halfedge.Tesselate[mglvec.Vec2](m, g, &tri, nil)
		if err := sweep.Verify[float64](tri.Indices, halfedge.Vertices2D[mglvec.Vec2](m, g)); err != nil {
			t.Errorf("face %d: %v", g, err)
		}
	}
}
