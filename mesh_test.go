package halfedge_test

import (
	"testing"

	. "github.com/hajimehoshi/go-halfedge"
	"github.com/hajimehoshi/go-halfedge/sweep"
	"github.com/hajimehoshi/go-halfedge/vecmath/mglvec"
)

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func boundaryEdges(m *mglvec.Mesh3d) int {
	n := 0
	for e := range m.Edges() {
		if m.Edge(e).IsBoundarySelf() {
			n++
		}
	}
	return n
}

func TestAddPolygon(t *testing.T) {
	m := mglvec.NewMesh2d()
	f := m.AddPolygon([]mglvec.Payload2d{
		mglvec.P2(0, 0), mglvec.P2(1, 0), mglvec.P2(1, 1), mglvec.P2(0, 1),
	}, false)
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	if got, want := m.NumEdges(), 8; got != want {
		t.Errorf("edges: got %d, want %d", got, want)
	}
	if got, want := m.FaceDegree(f), 4; got != want {
		t.Errorf("degree: got %d, want %d", got, want)
	}
	var vs []VertexID
	for v := range m.FaceVertices(f) {
		vs = append(vs, v)
	}
	for i, v := range vs {
		if v != VertexID(i) {
			t.Fatalf("face vertices: got %v, want 0, 1, 2, 3", vs)
		}
	}
	outer := m.Twin(m.Face(f).EdgeID())
	n := 0
	for e := range m.EdgesFace(outer) {
		if !m.Edge(e).IsBoundarySelf() {
			t.Errorf("edge %d on the outer loop has a face", e)
		}
		n++
	}
	if n != 4 {
		t.Errorf("outer loop: got %d edges, want 4", n)
	}
	for e := range m.Edges() {
		if !m.IsBoundary(e) {
			t.Errorf("edge %d of a single face is not on the boundary", e)
		}
	}
}

func TestSameFace(t *testing.T) {
	m := mglvec.NewMesh2d()
	f := m.AddPolygon([]mglvec.Payload2d{mglvec.P2(0, 0), mglvec.P2(1, 0), mglvec.P2(0, 1)}, false)
	e := m.Face(f).EdgeID()
	for v := range m.FaceVertices(f) {
		if !m.SameFace(e, v) || !m.SameFaceBack(e, v) {
			t.Errorf("vertex %d not found on the loop of its face", v)
		}
	}
	other := m.AddIsolatedVertex(mglvec.P2(5, 5))
	if m.SameFace(e, other) || m.SameFaceBack(e, other) {
		t.Errorf("isolated vertex found on a face loop")
	}
}

// twoTriangles returns the unit square split along the diagonal from
// vertex 2 to vertex 0.
func twoTriangles(t *testing.T) (*mglvec.Mesh2d, [4]VertexID) {
	m := mglvec.NewMesh2d()
	var v [4]VertexID
	for i, p := range []mglvec.Payload2d{mglvec.P2(0, 0), mglvec.P2(1, 0), mglvec.P2(1, 1), mglvec.P2(0, 1)} {
		v[i] = m.AddIsolatedVertex(p)
	}
	m.CloseFace([]VertexID{v[0], v[1], v[2]}, false)
	m.CloseFace([]VertexID{v[0], v[2], v[3]}, false)
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	return m, v
}

func TestCloseFaceReusesEdges(t *testing.T) {
	m, v := twoTriangles(t)
	if got, want := m.NumEdges(), 10; got != want {
		t.Errorf("edges: got %d, want %d", got, want)
	}
	e, ok := m.EdgeBetween(v[0], v[2])
	if !ok {
		t.Fatalf("no edge between 0 and 2")
	}
	if m.IsBoundary(e) {
		t.Errorf("shared edge is on the boundary")
	}
	if m.EdgeFace(e) == m.OtherFace(e) {
		t.Errorf("shared edge has the same face on both sides")
	}
}

func TestCloseFaceRejectsUsedEdge(t *testing.T) {
	m, v := twoTriangles(t)
	mustPanic(t, "closing over an inner edge", func() {
		m.CloseFace([]VertexID{v[2], v[0], v[1]}, false)
	})
	if err := m.Check(); err != nil {
		t.Fatalf("mesh changed by a rejected CloseFace: %v", err)
	}
}

func TestFlip(t *testing.T) {
	m, v := twoTriangles(t)
	e, _ := m.EdgeBetween(v[2], v[0])
	tw := m.Twin(e)
	touched := map[EdgeID]bool{
		e: true, tw: true,
		m.Next(e): true, m.Prev(e): true,
		m.Next(tw): true, m.Prev(tw): true,
	}
	before := map[EdgeID]HalfEdge{}
	for x := range m.Edges() {
		before[x] = *m.Edge(x)
	}

	m.Flip(e)

	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	if m.Origin(e) != v[3] || m.Target(e) != v[1] {
		t.Errorf("flipped edge: got %d -> %d, want %d -> %d", m.Origin(e), m.Target(e), v[3], v[1])
	}
	for f := range m.Faces() {
		if got := m.FaceDegree(f); got != 3 {
			t.Errorf("face %d: degree %d after flip", f, got)
		}
	}
	for x, h := range before {
		if touched[x] {
			continue
		}
		if *m.Edge(x) != h {
			t.Errorf("edge %d changed: %v -> %v", x, h, m.Edge(x))
		}
	}

	m.Flip(e)
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	if m.Origin(e) != v[0] || m.Target(e) != v[2] {
		t.Errorf("flipped twice: got %d -> %d, want %d -> %d", m.Origin(e), m.Target(e), v[0], v[2])
	}
}

func TestFlipBoundaryPanics(t *testing.T) {
	m, v := twoTriangles(t)
	e, _ := m.EdgeBetween(v[0], v[1])
	mustPanic(t, "flipping a boundary edge", func() {
		m.Flip(e)
	})
}

func TestHalfEdgeContracts(t *testing.T) {
	mustPanic(t, "NewHalfEdge without next", func() {
		NewHalfEdge(NoEdge, 1, 1, 0, NoFace)
	})
	mustPanic(t, "NewHalfEdge without twin", func() {
		NewHalfEdge(1, NoEdge, 1, 0, NoFace)
	})
	h := NewHalfEdge(1, 1, 1, 0, NoFace)
	h.SetFace(0)
	mustPanic(t, "setting a face twice", func() {
		h.SetFace(1)
	})
	h.DeleteFace()
	mustPanic(t, "deleting a missing face", func() {
		h.DeleteFace()
	})
	f := NewFace(0, false)
	f.SetID(3)
	mustPanic(t, "setting a face id twice", func() {
		f.SetID(4)
	})
	f.Delete()
	mustPanic(t, "deleting a face twice", func() {
		f.Delete()
	})
}

func triangle3d() (*mglvec.Mesh3d, FaceID) {
	m := mglvec.NewMesh3d()
	f := m.AddPolygon([]mglvec.Payload3d{
		mglvec.P3(0, 0, 0), mglvec.P3(1, 0, 0), mglvec.P3(0, 1, 0),
	}, false)
	return m, f
}

func TestExtrude(t *testing.T) {
	m, f := triangle3d()
	e := m.Twin(m.Face(f).EdgeID())
	capFace := m.Extrude(e, mglvec.Vec3{0, 0, 1}, true)

	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	if capFace == NoFace {
		t.Fatalf("no cap face")
	}
	if got, want := m.NumVertices(), 6; got != want {
		t.Errorf("vertices: got %d, want %d", got, want)
	}
	if got, want := m.NumEdges(), 18; got != want {
		t.Errorf("half-edges: got %d, want %d", got, want)
	}
	if got, want := m.NumFaces(), 5; got != want {
		t.Errorf("faces: got %d, want %d", got, want)
	}
	if got := m.FaceDegree(f); got != 3 {
		t.Errorf("original face: degree %d", got)
	}
	if got := m.FaceDegree(capFace); got != 3 {
		t.Errorf("cap: degree %d", got)
	}
	quads := 0
	for g := range m.Faces() {
		if g != f && g != capFace {
			if m.FaceDegree(g) != 4 {
				t.Errorf("side face %d: degree %d", g, m.FaceDegree(g))
			}
			quads++
		}
	}
	if quads != 3 {
		t.Errorf("side faces: got %d, want 3", quads)
	}
	for v := range m.FaceVertices(capFace) {
		if z := m.Pos(v).Z(); z != 1 {
			t.Errorf("cap vertex %d at z = %v", v, z)
		}
	}
	if n := boundaryEdges(m); n != 0 {
		t.Errorf("closed prism has %d boundary half-edges", n)
	}
}

func TestExtrudeOpen(t *testing.T) {
	m, f := triangle3d()
	e := m.Twin(m.Face(f).EdgeID())
	if got := m.Extrude(e, mglvec.Vec3{0, 0, 1}, false); got != NoFace {
		t.Errorf("open extrusion returned face %d", got)
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	if got, want := m.NumFaces(), 4; got != want {
		t.Errorf("faces: got %d, want %d", got, want)
	}
	if got, want := boundaryEdges(m), 3; got != want {
		t.Errorf("boundary half-edges: got %d, want %d", got, want)
	}
}

func TestExtrudeFace(t *testing.T) {
	m := mglvec.NewMesh3d()
	f := m.AddPolygon([]mglvec.Payload3d{
		mglvec.P3(0, 0, 0), mglvec.P3(1, 0, 0), mglvec.P3(1, 1, 0), mglvec.P3(0, 1, 0),
	}, false)
	capFace := m.ExtrudeFace(f, mglvec.Vec3{0, 0, 2}, true)
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	if m.HasFace(f) {
		t.Errorf("extruded face still exists")
	}
	if got, want := m.NumFaces(), 5; got != want {
		t.Errorf("faces: got %d, want %d", got, want)
	}
	if got, want := boundaryEdges(m), 4; got != want {
		t.Errorf("boundary half-edges: got %d, want %d", got, want)
	}
	if got := m.FaceDegree(capFace); got != 4 {
		t.Errorf("cap: degree %d", got)
	}
}

func TestExtrudeInnerEdgePanics(t *testing.T) {
	m, f := triangle3d()
	mustPanic(t, "extruding an inner edge", func() {
		m.Extrude(m.Face(f).EdgeID(), mglvec.Vec3{0, 0, 1}, true)
	})
}

func TestAddVertex(t *testing.T) {
	m := mglvec.NewMesh2d()
	a := m.AddIsolatedVertex(mglvec.P2(0, 0))
	b, e := m.AddVertex(a, mglvec.P2(1, 0))
	c, _ := m.AddVertex(b, mglvec.P2(1, 1))
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	if m.Origin(e) != a || m.Target(e) != b {
		t.Errorf("edge: got %d -> %d, want %d -> %d", m.Origin(e), m.Target(e), a, b)
	}
	f := m.CloseFaceWithEdge(b, c, a, false)
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	if got := m.FaceDegree(f); got != 3 {
		t.Fatalf("degree: got %d, want 3", got)
	}
	var tri sweep.Triangulation[VertexID]
	SweepLine[mglvec.Vec2](m, f, &tri, nil)
	if tri.Len() != 1 {
		t.Errorf("triangles: got %d, want 1", tri.Len())
	}
}

func TestRemoveFace(t *testing.T) {
	m, v := twoTriangles(t)
	e, _ := m.EdgeBetween(v[0], v[2])
	m.RemoveFace(m.EdgeFace(e))
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	if got, want := m.NumFaces(), 1; got != want {
		t.Errorf("faces: got %d, want %d", got, want)
	}
	if !m.Edge(e).IsBoundarySelf() {
		t.Errorf("edge of a removed face still has a face")
	}
	m.Compact()
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	for f := range m.Faces() {
		if f != 0 {
			t.Errorf("face id after Compact: got %d, want 0", f)
		}
	}
}
