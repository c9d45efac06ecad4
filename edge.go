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

import (
	"fmt"
	"iter"
)

// HalfEdge is one direction of an edge. Its face lies on its left.
type HalfEdge struct {
	id     EdgeID
	next   EdgeID
	prev   EdgeID
	twin   EdgeID
	origin VertexID
	face   FaceID
}

// NewHalfEdge returns an unregistered half-edge. next, twin and prev must be
// real handles, which usually means the caller predicts the ids of edges it
// is about to push.
func NewHalfEdge(next, twin, prev EdgeID, origin VertexID, face FaceID) HalfEdge {
	assert(next != NoEdge, "half-edge needs a next edge")
	assert(twin != NoEdge, "half-edge needs a twin")
	assert(prev != NoEdge, "half-edge needs a prev edge")
	return HalfEdge{
		id:     NoEdge,
		next:   next,
		prev:   prev,
		twin:   twin,
		origin: origin,
		face:   face,
	}
}

func (e *HalfEdge) ID() EdgeID { return e.id }

func (e *HalfEdge) SetID(id EdgeID) {
	assert(e.id == NoEdge, "edge id is already set")
	assert(id != NoEdge, "invalid edge id")
	e.id = id
}

func (e *HalfEdge) Delete() {
	assert(e.id != NoEdge, "edge is already deleted")
	e.id = NoEdge
}

func (e *HalfEdge) IsDeleted() bool { return e.id == NoEdge }

func (e *HalfEdge) NextID() EdgeID { return e.next }

func (e *HalfEdge) PrevID() EdgeID { return e.prev }

func (e *HalfEdge) TwinID() EdgeID { return e.twin }

func (e *HalfEdge) OriginID() VertexID { return e.origin }

func (e *HalfEdge) FaceID() FaceID { return e.face }

// IsBoundarySelf reports whether this half-edge has no face.
func (e *HalfEdge) IsBoundarySelf() bool { return e.face == NoFace }

// SetFace attaches the half-edge to f. The half-edge must be a boundary.
func (e *HalfEdge) SetFace(f FaceID) {
	assert(e.face == NoFace, "edge already has a face")
	e.face = f
}

// DeleteFace detaches the half-edge from its face.
func (e *HalfEdge) DeleteFace() {
	assert(e.face != NoFace, "edge has no face")
	e.face = NoFace
}

func (e *HalfEdge) String() string {
	return fmt.Sprintf("%d: %d -> [%d] <- %d, twin %d, origin %d, face %d", e.id, e.prev, e.id, e.next, e.twin, e.origin, e.face)
}

func (m *Mesh[S, V, T, P]) Next(e EdgeID) EdgeID { return m.edges.Get(e).next }

func (m *Mesh[S, V, T, P]) Prev(e EdgeID) EdgeID { return m.edges.Get(e).prev }

func (m *Mesh[S, V, T, P]) Twin(e EdgeID) EdgeID { return m.edges.Get(e).twin }

func (m *Mesh[S, V, T, P]) Origin(e EdgeID) VertexID { return m.edges.Get(e).origin }

// Target returns the vertex e points to.
func (m *Mesh[S, V, T, P]) Target(e EdgeID) VertexID {
	return m.edges.Get(m.edges.Get(e).twin).origin
}

func (m *Mesh[S, V, T, P]) EdgeFace(e EdgeID) FaceID { return m.edges.Get(e).face }

// OtherFace returns the face on the far side of e.
func (m *Mesh[S, V, T, P]) OtherFace(e EdgeID) FaceID {
	return m.edges.Get(m.edges.Get(e).twin).face
}

// IsBoundary reports whether either side of e lacks a face.
func (m *Mesh[S, V, T, P]) IsBoundary(e EdgeID) bool {
	he := m.edges.Get(e)
	return he.face == NoFace || m.edges.Get(he.twin).face == NoFace
}

func (m *Mesh[S, V, T, P]) link(a, b EdgeID) {
	m.edges.Get(a).next = b
	m.edges.Get(b).prev = a
}

// EdgesFace iterates over the loop of e starting at e, following next.
func (m *Mesh[S, V, T, P]) EdgesFace(e EdgeID) iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		c := e
		for {
			if !yield(c) {
				return
			}
			c = m.edges.Get(c).next
			if c == e {
				return
			}
		}
	}
}

// EdgesFaceBack iterates over the loop of e starting at e, following prev.
func (m *Mesh[S, V, T, P]) EdgesFaceBack(e EdgeID) iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		c := e
		for {
			if !yield(c) {
				return
			}
			c = m.edges.Get(c).prev
			if c == e {
				return
			}
		}
	}
}

func (m *Mesh[S, V, T, P]) FaceEdges(f FaceID) iter.Seq[EdgeID] {
	return m.EdgesFace(m.faces.Get(f).edge)
}

// FaceVertices iterates over the vertices of f in loop order.
func (m *Mesh[S, V, T, P]) FaceVertices(f FaceID) iter.Seq[VertexID] {
	return func(yield func(VertexID) bool) {
		for e := range m.FaceEdges(f) {
			if !yield(m.edges.Get(e).origin) {
				return
			}
		}
	}
}

func (m *Mesh[S, V, T, P]) FaceDegree(f FaceID) int {
	n := 0
	for range m.FaceEdges(f) {
		n++
	}
	return n
}

// VertexEdgesOut iterates over the half-edges leaving v.
func (m *Mesh[S, V, T, P]) VertexEdgesOut(v VertexID) iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		start := m.vertices.Get(v).edge
		if start == NoEdge {
			return
		}
		e := start
		for {
			if !yield(e) {
				return
			}
			e = m.edges.Get(m.edges.Get(e).prev).twin
			if e == start {
				return
			}
		}
	}
}

// EdgeBetween returns the half-edge from a to b.
func (m *Mesh[S, V, T, P]) EdgeBetween(a, b VertexID) (EdgeID, bool) {
	for e := range m.VertexEdgesOut(a) {
		if m.Target(e) == b {
			return e, true
		}
	}
	return NoEdge, false
}

// SameFace reports whether v is reached walking forward from e within its
// loop.
func (m *Mesh[S, V, T, P]) SameFace(e EdgeID, v VertexID) bool {
	for c := range m.EdgesFace(e) {
		if m.edges.Get(c).origin == v {
			return true
		}
	}
	return false
}

// SameFaceBack is SameFace walking backward.
func (m *Mesh[S, V, T, P]) SameFaceBack(e EdgeID, v VertexID) bool {
	for c := range m.EdgesFaceBack(e) {
		if m.edges.Get(c).origin == v {
			return true
		}
	}
	return false
}

func (m *Mesh[S, V, T, P]) isTriangle(e EdgeID) bool {
	return m.Next(m.Next(m.Next(e))) == e && m.Next(e) != e
}

// Flip replaces the edge e, shared by two triangles, with the other
// diagonal of the quadrilateral they form.
//
// Before: e = a->b in triangle (a, b, c), twin = b->a in triangle (b, a, d).
// After: e = d->c in triangle (d, c, a), twin = c->d in triangle (c, d, b).
func (m *Mesh[S, V, T, P]) Flip(e EdgeID) {
	he := m.edges.Get(e)
	t := he.twin
	f1, f2 := he.face, m.edges.Get(t).face
	assert(f1 != NoFace && f2 != NoFace, "cannot flip a boundary edge")
	assert(m.isTriangle(e) && m.isTriangle(t), "flip needs two triangles")

	n1, p1 := he.next, he.prev
	tw := m.edges.Get(t)
	n2, p2 := tw.next, tw.prev
	a, b := he.origin, tw.origin
	c := m.edges.Get(p1).origin
	d := m.edges.Get(p2).origin

	m.link(e, p1)
	m.link(p1, n2)
	m.link(n2, e)
	m.link(t, p2)
	m.link(p2, n1)
	m.link(n1, t)

	m.edges.Get(e).origin = d
	m.edges.Get(t).origin = c
	m.edges.Get(n2).face = f1
	m.edges.Get(n1).face = f2

	if m.vertices.Get(a).edge == e {
		m.vertices.Get(a).edge = n2
	}
	if m.vertices.Get(b).edge == t {
		m.vertices.Get(b).edge = n1
	}
	m.faces.Get(f1).edge = e
	m.faces.Get(f2).edge = t
}
