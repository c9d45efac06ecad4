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

package sweep

import (
	"github.com/hajimehoshi/go-halfedge/arena"
	"github.com/hajimehoshi/go-halfedge/vecmath"
)

// Sink receives triangles as triples of vertex ids.
type Sink[I arena.Index] interface {
	Insert(a, b, c I)
}

// Triangulation is a Sink that appends to a flat index list.
type Triangulation[I arena.Index] struct {
	Indices []I
}

func (t *Triangulation[I]) Insert(a, b, c I) {
	t.Indices = append(t.Indices, a, b, c)
}

// Len returns the number of triangles.
func (t *Triangulation[I]) Len() int {
	return len(t.Indices) / 3
}

func (t *Triangulation[I]) Triangle(i int) (I, I, I) {
	return t.Indices[3*i], t.Indices[3*i+1], t.Indices[3*i+2]
}

// MonotoneTriangulator triangulates a y-monotone counterclockwise polygon
// given as indices into pts. emit receives every triangle counterclockwise.
type MonotoneTriangulator[V any] interface {
	Triangulate(poly []int, pts []V, emit func(a, b, c int))
}

// Triangulate decomposes the counterclockwise simple polygon vs into
// monotone pieces and triangulates each piece with mono. A polygon with n
// vertices yields n-2 triangles. obs may be nil.
func Triangulate[S vecmath.Scalar, I arena.Index, V vecmath.Vector2D[S, V]](tri Sink[I], vs []IndexedVertex2D[I, V], mono MonotoneTriangulator[V], obs Observer[I]) {
	switch n := len(vs); {
	case n < 3:
		return
	case n == 3:
		tri.Insert(vs[0].Index, vs[1].Index, vs[2].Index)
		return
	}

	eps := vecmath.Epsilon[S]() * 1000
	d := Decompose(vs, eps, obs)

	pts := make([]V, len(vs))
	for i, v := range vs {
		pts[i] = v.Vec
	}
	emit := func(a, b, c int) {
		tri.Insert(vs[a].Index, vs[b].Index, vs[c].Index)
	}
	for _, poly := range d.Polygons {
		mono.Triangulate(poly, pts, emit)
	}
}

// SweepLine triangulates vs with the linear monotone triangulator.
func SweepLine[S vecmath.Scalar, I arena.Index, V vecmath.Vector2D[S, V]](tri Sink[I], vs []IndexedVertex2D[I, V], obs Observer[I]) {
	Triangulate[S](tri, vs, LinearTriangulator[S, V]{}, obs)
}

// SweepDynamic triangulates vs with the minimum-weight triangulator limited
// to a window of k vertices. k <= 0 removes the limit.
func SweepDynamic[S vecmath.Scalar, I arena.Index, V vecmath.Vector2D[S, V]](tri Sink[I], vs []IndexedVertex2D[I, V], k int, obs Observer[I]) {
	Triangulate[S](tri, vs, DynamicTriangulator[S, V]{Window: k}, obs)
}
