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

// Package halfedge implements a half-edge mesh with sweep-line polygon
// triangulation.
package halfedge

import (
	"fmt"
	"iter"
	"math"

	"github.com/hajimehoshi/go-halfedge/arena"
	"github.com/hajimehoshi/go-halfedge/vecmath"
)

type (
	VertexID uint32
	EdgeID   uint32
	FaceID   uint32
)

const (
	NoVertex = VertexID(math.MaxUint32)
	NoEdge   = EdgeID(math.MaxUint32)
	NoFace   = FaceID(math.MaxUint32)
)

func assert(cond bool, msg string) {
	if !cond {
		panic("halfedge: " + msg)
	}
}

// Payload is the data carried by a vertex.
type Payload[S vecmath.Scalar, V, T, P any] interface {
	Pos() V
	Transform(t T) P
	Lerp(o P, f S) P
}

type Vertex[P any] struct {
	id      VertexID
	edge    EdgeID
	payload P
}

func NewVertex[P any](edge EdgeID, payload P) Vertex[P] {
	return Vertex[P]{
		id:      NoVertex,
		edge:    edge,
		payload: payload,
	}
}

func (v *Vertex[P]) ID() VertexID { return v.id }

func (v *Vertex[P]) SetID(id VertexID) {
	assert(v.id == NoVertex, "vertex id is already set")
	assert(id != NoVertex, "invalid vertex id")
	v.id = id
}

func (v *Vertex[P]) Delete() {
	assert(v.id != NoVertex, "vertex is already deleted")
	v.id = NoVertex
}

func (v *Vertex[P]) IsDeleted() bool { return v.id == NoVertex }

// EdgeID returns an outgoing half-edge, or NoEdge for an isolated vertex.
func (v *Vertex[P]) EdgeID() EdgeID { return v.edge }

func (v *Vertex[P]) SetEdge(e EdgeID) { v.edge = e }

func (v *Vertex[P]) Payload() P { return v.payload }

func (v *Vertex[P]) SetPayload(p P) { v.payload = p }

func (v *Vertex[P]) String() string {
	return fmt.Sprintf("%d --%d-->", v.id, v.edge)
}

type Face struct {
	id     FaceID
	edge   EdgeID
	curved bool
}

func NewFace(edge EdgeID, curved bool) Face {
	assert(edge != NoEdge, "face needs a representative edge")
	return Face{
		id:     NoFace,
		edge:   edge,
		curved: curved,
	}
}

func (f *Face) ID() FaceID { return f.id }

func (f *Face) SetID(id FaceID) {
	assert(f.id == NoFace, "face id is already set")
	assert(id != NoFace, "invalid face id")
	f.id = id
}

func (f *Face) Delete() {
	assert(f.id != NoFace, "face is already deleted")
	f.id = NoFace
}

func (f *Face) IsDeleted() bool { return f.id == NoFace }

func (f *Face) EdgeID() EdgeID { return f.edge }

func (f *Face) SetEdge(e EdgeID) { f.edge = e }

// MayBeCurved reports whether the face was closed without a planarity
// guarantee.
func (f *Face) MayBeCurved() bool { return f.curved }

func (f *Face) String() string {
	return fmt.Sprintf("%d --%d--> curved=%v", f.id, f.edge, f.curved)
}

// Mesh is a half-edge mesh. The zero value is not usable; use NewMesh.
//
// A Mesh must not be mutated concurrently. Read-only access, including
// triangulation, may run from several goroutines.
type Mesh[S vecmath.Scalar, V vecmath.Vector[S, V], T vecmath.Transform[V, T], P Payload[S, V, T, P]] struct {
	vertices arena.Arena[VertexID, Vertex[P], *Vertex[P]]
	edges    arena.Arena[EdgeID, HalfEdge, *HalfEdge]
	faces    arena.Arena[FaceID, Face, *Face]
}

func NewMesh[S vecmath.Scalar, V vecmath.Vector[S, V], T vecmath.Transform[V, T], P Payload[S, V, T, P]]() *Mesh[S, V, T, P] {
	return &Mesh[S, V, T, P]{}
}

func (m *Mesh[S, V, T, P]) Vertex(v VertexID) *Vertex[P] { return m.vertices.Get(v) }
func (m *Mesh[S, V, T, P]) Edge(e EdgeID) *HalfEdge { return m.edges.Get(e) }
func (m *Mesh[S, V, T, P]) Face(f FaceID) *Face { return m.faces.Get(f) }

func (m *Mesh[S, V, T, P]) HasVertex(v VertexID) bool { return m.vertices.Has(v) }
func (m *Mesh[S, V, T, P]) HasEdge(e EdgeID) bool { return m.edges.Has(e) }
func (m *Mesh[S, V, T, P]) HasFace(f FaceID) bool { return m.faces.Has(f) }

func (m *Mesh[S, V, T, P]) NumVertices() int { return m.vertices.Count() }
func (m *Mesh[S, V, T, P]) NumEdges() int { return m.edges.Count() }
func (m *Mesh[S, V, T, P]) NumFaces() int { return m.faces.Count() }

func (m *Mesh[S, V, T, P]) Vertices() iter.Seq[VertexID] { return m.vertices.All() }
func (m *Mesh[S, V, T, P]) Edges() iter.Seq[EdgeID] { return m.edges.All() }
func (m *Mesh[S, V, T, P]) Faces() iter.Seq[FaceID] { return m.faces.All() }

// Pos returns the position of v.
func (m *Mesh[S, V, T, P]) Pos(v VertexID) V {
	return m.vertices.Get(v).payload.Pos()
}

// Compact drops deleted entities and renumbers the remaining ones. All
// handles obtained before the call are invalid afterwards.
func (m *Mesh[S, V, T, P]) Compact() {
	vmap := m.vertices.Compact()
	emap := m.edges.Compact()
	fmap := m.faces.Compact()

	remapEdge := func(e EdgeID) EdgeID {
		if e == NoEdge {
			return NoEdge
		}
		return emap[e]
	}
	for v := range m.vertices.All() {
		vx := m.vertices.Get(v)
		vx.edge = remapEdge(vx.edge)
	}
	for e := range m.edges.All() {
		he := m.edges.Get(e)
		he.next = emap[he.next]
		he.prev = emap[he.prev]
		he.twin = emap[he.twin]
		he.origin = vmap[he.origin]
		if he.face != NoFace {
			he.face = fmap[he.face]
		}
	}
	for f := range m.faces.All() {
		fc := m.faces.Get(f)
		fc.edge = emap[fc.edge]
	}
}
