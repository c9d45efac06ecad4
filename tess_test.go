package halfedge_test

import (
	"fmt"
	"testing"

	. "github.com/hajimehoshi/go-halfedge"
	"github.com/hajimehoshi/go-halfedge/sweep"
	"github.com/hajimehoshi/go-halfedge/vecmath/mglvec"
)

func ExampleSweepLine() {
	m := mglvec.NewMesh2d()
	f := m.AddPolygon([]mglvec.Payload2d{
		mglvec.P2(0, 0),
		mglvec.P2(2, 1),
		mglvec.P2(4, 0),
		mglvec.P2(4, 3),
		mglvec.P2(0, 3),
	}, false)
	var tri sweep.Triangulation[VertexID]
	SweepLine[mglvec.Vec2](m, f, &tri, nil)
	e := tri.Indices
	for i := 0; i < len(e)/3; i++ {
		a, b, c := m.Pos(e[3*i]), m.Pos(e[3*i+1]), m.Pos(e[3*i+2])
		fmt.Printf("(%.1f, %.1f), (%.1f, %.1f), (%.1f, %.1f)\n",
			a.X(), a.Y(), b.X(), b.Y(), c.X(), c.Y())
	}
	// Output:
	// (2.0, 1.0), (4.0, 3.0), (0.0, 3.0)
	// (0.0, 0.0), (2.0, 1.0), (0.0, 3.0)
	// (2.0, 1.0), (4.0, 0.0), (4.0, 3.0)
}

func verifyFace(t *testing.T, m *mglvec.Mesh3d, f FaceID, indices []VertexID) {
	t.Helper()
	if err := sweep.Verify[float64](indices, Vertices2D[mglvec.Vec2](m, f)); err != nil {
		t.Errorf("face %d: %v", f, err)
	}
}

func TestSweepLineFace(t *testing.T) {
	m := mglvec.NewMesh3d()
	f := m.AddPolygon([]mglvec.Payload3d{
		mglvec.P3(0, 0, 0), mglvec.P3(2, 0, 0), mglvec.P3(2, 1, 0),
		mglvec.P3(1, 1, 0), mglvec.P3(1, 3, 0), mglvec.P3(0, 3, 0),
	}, false)
	var tri sweep.Triangulation[VertexID]
	SweepLine[mglvec.Vec2](m, f, &tri, nil)
	if got, want := tri.Len(), 4; got != want {
		t.Fatalf("triangles: got %d, want %d", got, want)
	}
	for _, v := range tri.Indices {
		if !m.SameFace(m.Face(f).EdgeID(), v) {
			t.Errorf("vertex %d is not on face %d", v, f)
		}
	}
	verifyFace(t, m, f, tri.Indices)
}

func TestSweepDynamicFace(t *testing.T) {
	m := mglvec.NewMesh3d()
	f := m.AddPolygon([]mglvec.Payload3d{
		mglvec.P3(0, 0, 0), mglvec.P3(4, 0, 0), mglvec.P3(4, 3, 0),
		mglvec.P3(2, 1, 0), mglvec.P3(0, 3, 0),
	}, false)
	for _, k := range []int{0, 2} {
		var tri sweep.Triangulation[VertexID]
		var meta TesselationMeta
		SweepDynamic[mglvec.Vec2](m, f, &tri, k, &meta)
		verifyFace(t, m, f, tri.Indices)
		s := meta.Sweep
		if got, want := len(s.VertexTypes), 5; got != want {
			t.Errorf("k=%d: recorded types: got %d, want %d", k, got, want)
		}
		if s.Count(sweep.Merge) != 1 || len(s.Diagonals) == 0 {
			t.Errorf("k=%d: the notch needs a diagonal, got types %v, diagonals %v", k, s.VertexTypes, s.Diagonals)
		}
		if s.Count(sweep.Start)+s.Count(sweep.Split) != s.Count(sweep.End)+s.Count(sweep.Merge) {
			t.Errorf("k=%d: unbalanced vertex types %v", k, s.VertexTypes)
		}
	}
	var tri sweep.Triangulation[VertexID]
	SweepDynamic[mglvec.Vec2](m, f, &tri, 0, nil)
	verifyFace(t, m, f, tri.Indices)
}

func TestTiltedFace(t *testing.T) {
	m := mglvec.NewMesh3d()
	f := m.AddPolygon([]mglvec.Payload3d{
		mglvec.P3(0, 0, 0), mglvec.P3(1, 0, 0), mglvec.P3(1, 0, 1), mglvec.P3(0, 0, 1),
	}, false)
	x, y, z := m.FaceNormal(f)
	if x != 0 || y >= 0 || z != 0 {
		t.Errorf("normal: got (%v, %v, %v), want -y", x, y, z)
	}
	var tri sweep.Triangulation[VertexID]
	Tesselate[mglvec.Vec2](m, f, &tri, nil)
	if got, want := tri.Len(), 2; got != want {
		t.Fatalf("triangles: got %d, want %d", got, want)
	}
	verifyFace(t, m, f, tri.Indices)
}

func TestNonPlanarFace(t *testing.T) {
	ps := []mglvec.Payload3d{
		mglvec.P3(0, 0, 0), mglvec.P3(1, 0, 0), mglvec.P3(1, 1, 0.5), mglvec.P3(0, 1, 0),
	}
	m := mglvec.NewMesh3d()
	flat := m.AddPolygon(ps, false)
	if m.IsPlanar(flat, 1e-9) {
		t.Errorf("bent quad reported planar")
	}
	mustPanic(t, "triangulating a bent face", func() {
		var tri sweep.Triangulation[VertexID]
		SweepLine[mglvec.Vec2](m, flat, &tri, nil)
	})

	curved := m.AddPolygon(ps, true)
	var tri sweep.Triangulation[VertexID]
	SweepLine[mglvec.Vec2](m, curved, &tri, nil)
	if got, want := tri.Len(), 2; got != want {
		t.Errorf("curved face: got %d triangles, want %d", got, want)
	}
}

func TestTesselationMeta(t *testing.T) {
	m := mglvec.NewMesh2d()
	f := m.AddPolygon([]mglvec.Payload2d{
		mglvec.P2(0, 0), mglvec.P2(1, 0), mglvec.P2(1, 1), mglvec.P2(0, 1),
	}, false)
	opts := &TesselationOptions{Meta: &TesselationMeta{}}
	var tri sweep.Triangulation[VertexID]
	Tesselate[mglvec.Vec2](m, f, &tri, opts)
	meta := opts.Meta.Sweep
	if got, want := len(meta.VertexTypes), 4; got != want {
		t.Fatalf("recorded types: got %d, want %d", got, want)
	}
	if meta.Count(sweep.Start) != 1 || meta.Count(sweep.End) != 1 || meta.Count(sweep.Regular) != 2 {
		t.Errorf("unexpected vertex types %v", meta.VertexTypes)
	}
	if len(meta.Diagonals) != 0 {
		t.Errorf("square needs no diagonals, got %v", meta.Diagonals)
	}
}

func TestTesselateMesh(t *testing.T) {
	m, f := triangle3d()
	m.Extrude(m.Twin(m.Face(f).EdgeID()), mglvec.Vec3{0, 0, 1}, true)
	for _, s := range []Strategy{StrategySweepLine, StrategySweepDynamic} {
		indices := TesselateMesh[mglvec.Vec2](m, &TesselationOptions{Strategy: s})
		// A triangle, a cap and three quads.
		if got, want := len(indices), 3*8; got != want {
			t.Errorf("%v: got %d indices, want %d", s, got, want)
		}
	}
}

func TestSweepGreedy(t *testing.T) {
	m, f := triangle3d()
	mustPanic(t, "SweepGreedy", func() {
		var tri sweep.Triangulation[VertexID]
		SweepGreedy[mglvec.Vec2](m, f, &tri, 0)
	})
}

func TestStrategyText(t *testing.T) {
	for _, s := range []Strategy{StrategySweepLine, StrategySweepDynamic, StrategySweepGreedy} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Strategy
		if err := got.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("got %v, want %v", got, s)
		}
	}
	var s Strategy
	if err := s.UnmarshalText([]byte("ear clipping")); err == nil {
		t.Errorf("unknown strategy accepted")
	}
	if _, err := Strategy(42).MarshalText(); err == nil {
		t.Errorf("invalid strategy marshaled")
	}
}
