// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package halfedge

// newEdgePair pushes the two halves of an edge from a to b. They form a
// loop of their own until the caller relinks them.
func (m *Mesh[S, V, T, P]) newEdgePair(a, b VertexID) (EdgeID, EdgeID) {
	e := m.edges.Next()
	s := e + 1
	m.edges.Push(NewHalfEdge(s, s, s, a, NoFace))
	m.edges.Push(NewHalfEdge(e, e, e, b, NoFace))
	return e, s
}

// boundaryIn returns a boundary half-edge ending at v.
func (m *Mesh[S, V, T, P]) boundaryIn(v VertexID) (EdgeID, bool) {
	for e := range m.VertexEdgesOut(v) {
		t := m.Twin(e)
		if m.edges.Get(t).face == NoFace {
			return t, true
		}
	}
	return NoEdge, false
}

// AddIsolatedVertex adds a vertex without edges.
func (m *Mesh[S, V, T, P]) AddIsolatedVertex(p P) VertexID {
	return m.vertices.Push(NewVertex(NoEdge, p))
}

// AddVertex adds a vertex joined to from by a new edge. Both halves of the
// edge are boundaries. It returns the new vertex and the half-edge from
// from to it.
func (m *Mesh[S, V, T, P]) AddVertex(from VertexID, p P) (VertexID, EdgeID) {
	assert(m.vertices.Has(from), "vertex does not exist")
	if m.vertices.Get(from).edge == NoEdge {
		v := m.vertices.Push(NewVertex(NoEdge, p))
		e, t := m.newEdgePair(from, v)
		m.vertices.Get(from).edge = e
		m.vertices.Get(v).edge = t
		return v, e
	}
	in, ok := m.boundaryIn(from)
	assert(ok, "vertex is not on a boundary")
	return m.addVertexAfter(in, p)
}

// addVertexAfter hangs a new vertex off the target of the boundary edge in,
// inside the loop of in.
func (m *Mesh[S, V, T, P]) addVertexAfter(in EdgeID, p P) (VertexID, EdgeID) {
	assert(m.edges.Get(in).face == NoFace, "edge is not a boundary")
	from := m.Target(in)
	out := m.Next(in)
	v := m.vertices.Push(NewVertex(NoEdge, p))
	e, t := m.newEdgePair(from, v)
	m.link(in, e)
	m.link(t, out)
	m.vertices.Get(v).edge = t
	return v, e
}

// AddPolygon adds a new isolated face through fresh vertices at ps, given
// counterclockwise.
func (m *Mesh[S, V, T, P]) AddPolygon(ps []P, curved bool) FaceID {
	vs := make([]VertexID, len(ps))
	for i, p := range ps {
		vs[i] = m.AddIsolatedVertex(p)
	}
	return m.CloseFace(vs, curved)
}

// CloseFace creates a face bounded by the cycle vs. Existing half-edges along
// the cycle are reused and must be boundaries; missing edges are created.
// Consecutive existing half-edges must already be consecutive in their
// loop.
func (m *Mesh[S, V, T, P]) CloseFace(vs []VertexID, curved bool) FaceID {
	n := len(vs)
	assert(n >= 3, "a face needs at least three vertices")

	seen := make(map[VertexID]struct{}, n)
	for _, v := range vs {
		assert(m.vertices.Has(v), "vertex does not exist")
		_, dup := seen[v]
		assert(!dup, "vertex appears twice in a face")
		seen[v] = struct{}{}
	}

	es := make([]EdgeID, n)
	for i := range vs {
		e, ok := m.EdgeBetween(vs[i], vs[(i+1)%n])
		if ok {
			assert(m.edges.Get(e).face == NoFace, "edge already has a face")
			es[i] = e
		} else {
			es[i] = NoEdge
		}
	}

	// Everything read from the existing topology is gathered before the
	// first write.
	type corner struct {
		isolated bool
		bin      EdgeID
		bout     EdgeID
	}
	corners := make([]corner, n)
	for i := range vs {
		k := (i + 1) % n
		v := vs[k]
		in, out := es[i], es[k]
		c := corner{bin: NoEdge, bout: NoEdge}
		switch {
		case in != NoEdge && out != NoEdge:
			assert(m.Next(in) == out, "existing edges of the face are not adjacent")
		case in == NoEdge && out == NoEdge:
			if m.vertices.Get(v).edge == NoEdge {
				c.isolated = true
				break
			}
			bin, ok := m.boundaryIn(v)
			assert(ok, "vertex is not on a boundary")
			c.bin, c.bout = bin, m.Next(bin)
		case in == NoEdge:
			c.bin = m.Prev(out)
		default:
			c.bout = m.Next(in)
		}
		corners[k] = c
	}

	created := make([]bool, n)
	for i := range vs {
		if es[i] != NoEdge {
			continue
		}
		es[i], _ = m.newEdgePair(vs[i], vs[(i+1)%n])
		created[i] = true
	}

	var links [][2]EdgeID
	for i := range vs {
		k := (i + 1) % n
		in, out := es[i], es[k]
		c := corners[k]
		switch {
		case !created[i] && !created[k]:
			continue
		case created[i] && created[k]:
			links = append(links, [2]EdgeID{in, out})
			if c.isolated {
				links = append(links, [2]EdgeID{m.Twin(out), m.Twin(in)})
				break
			}
			links = append(links, [2]EdgeID{c.bin, m.Twin(in)}, [2]EdgeID{m.Twin(out), c.bout})
		case created[i]:
			links = append(links, [2]EdgeID{in, out}, [2]EdgeID{c.bin, m.Twin(in)})
		default:
			links = append(links, [2]EdgeID{in, out}, [2]EdgeID{m.Twin(out), c.bout})
		}
		if c.isolated {
			m.vertices.Get(vs[k]).edge = out
		}
	}
	for _, l := range links {
		m.link(l[0], l[1])
	}

	f := m.faces.Push(NewFace(es[0], curved))
	for _, e := range es {
		m.edges.Get(e).SetFace(f)
	}
	return f
}

// CloseFaceWithEdge inserts an edge from from to to into the boundary loop
// entering from at the half-edge prev->from, and turns the part of the loop
// from->to->...->prev->from into a new face.
func (m *Mesh[S, V, T, P]) CloseFaceWithEdge(prev, from, to VertexID, curved bool) FaceID {
	assert(from != to, "cannot close a face onto the same vertex")
	in, ok := m.EdgeBetween(prev, from)
	assert(ok, "vertices are not connected")
	assert(m.edges.Get(in).face == NoFace, "edge is not a boundary")

	inOut := m.Next(in)
	toOut := NoEdge
	for e := range m.EdgesFace(inOut) {
		if e == in {
			break
		}
		if m.Origin(e) == to {
			toOut = e
			break
		}
	}
	assert(toOut != NoEdge, "target vertex is not on the same boundary")
	toIn := m.Prev(toOut)

	e, t := m.newEdgePair(from, to)
	m.link(in, e)
	m.link(e, toOut)
	m.link(toIn, t)
	m.link(t, inOut)
	return m.CloseFaceLoop(e, curved)
}

// CloseFaceLoop creates a face over the boundary loop of e.
func (m *Mesh[S, V, T, P]) CloseFaceLoop(e EdgeID, curved bool) FaceID {
	assert(m.edges.Get(e).face == NoFace, "edge is not a boundary")
	f := m.faces.Push(NewFace(e, curved))
	for c := range m.EdgesFace(e) {
		m.edges.Get(c).SetFace(f)
	}
	return f
}

// RemoveFace deletes f. Its edges stay and become boundaries.
func (m *Mesh[S, V, T, P]) RemoveFace(f FaceID) {
	assert(m.faces.Has(f), "face does not exist")
	for e := range m.FaceEdges(f) {
		m.edges.Get(e).DeleteFace()
	}
	m.faces.Delete(f)
}
