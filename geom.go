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
	"github.com/hajimehoshi/go-halfedge/sweep"
	"github.com/hajimehoshi/go-halfedge/vecmath"
)

type vec3[S vecmath.Scalar] [3]S

func toVec3[S vecmath.Scalar, V vecmath.Vector[S, V]](v V) vec3[S] {
	return vec3[S]{v.X(), v.Y(), v.Z()}
}

func (a vec3[S]) sub(b vec3[S]) vec3[S] {
	return vec3[S]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a vec3[S]) dot(b vec3[S]) S {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a vec3[S]) cross(b vec3[S]) vec3[S] {
	return vec3[S]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a vec3[S]) normalize() vec3[S] {
	l := vecmath.Sqrt(a.dot(a))
	if l == 0 {
		return a
	}
	return vec3[S]{a[0] / l, a[1] / l, a[2] / l}
}

// FaceNormal returns the Newell normal of f. Its length is twice the area of
// the face's projection onto the plane it spans.
func (m *Mesh[S, V, T, P]) FaceNormal(f FaceID) (x, y, z S) {
	var n vec3[S]
	for e := range m.FaceEdges(f) {
		c := toVec3[S](m.Pos(m.Origin(e)))
		d := toVec3[S](m.Pos(m.Target(e)))
		n[0] += (c[1] - d[1]) * (c[2] + d[2])
		n[1] += (c[2] - d[2]) * (c[0] + d[0])
		n[2] += (c[0] - d[0]) * (c[1] + d[1])
	}
	return n[0], n[1], n[2]
}

func (m *Mesh[S, V, T, P]) centroid(f FaceID) vec3[S] {
	var c vec3[S]
	var n S
	for v := range m.FaceVertices(f) {
		p := toVec3[S](m.Pos(v))
		c[0] += p[0]
		c[1] += p[1]
		c[2] += p[2]
		n++
	}
	return vec3[S]{c[0] / n, c[1] / n, c[2] / n}
}

// IsPlanar reports whether every vertex of f lies within eps of the plane
// through its centroid. eps is relative to the extent of the face.
func (m *Mesh[S, V, T, P]) IsPlanar(f FaceID, eps S) bool {
	x, y, z := m.FaceNormal(f)
	n := vec3[S]{x, y, z}.normalize()
	c := m.centroid(f)

	var extent S = 1
	for v := range m.FaceVertices(f) {
		d := toVec3[S](m.Pos(v)).sub(c)
		if l := vecmath.Sqrt(d.dot(d)); l > extent {
			extent = l
		}
	}
	for v := range m.FaceVertices(f) {
		d := toVec3[S](m.Pos(v)).sub(c)
		if vecmath.Abs(d.dot(n)) > eps*extent {
			return false
		}
	}
	return true
}

// planeBasis returns u and w spanning the plane with normal n such that
// u x w points along n. Faces facing +z keep their coordinates.
func planeBasis[S vecmath.Scalar](n vec3[S]) (vec3[S], vec3[S]) {
	ax, ay, az := vecmath.Abs(n[0]), vecmath.Abs(n[1]), vecmath.Abs(n[2])
	if az >= ax && az >= ay {
		if n[2] >= 0 {
			return vec3[S]{1, 0, 0}, vec3[S]{0, 1, 0}
		}
		return vec3[S]{0, 1, 0}, vec3[S]{1, 0, 0}
	}
	n = n.normalize()
	helper := vec3[S]{0, 0, 1}
	u := helper.cross(n).normalize()
	w := n.cross(u)
	return u, w
}

// Vertices2D projects the vertices of f onto the plane of f. The loop order
// stays counterclockwise as seen from the side the normal points to.
func Vertices2D[V2 vecmath.Vector2D[S, V2], S vecmath.Scalar, V vecmath.Vector[S, V], T vecmath.Transform[V, T], P Payload[S, V, T, P]](m *Mesh[S, V, T, P], f FaceID) []sweep.IndexedVertex2D[VertexID, V2] {
	x, y, z := m.FaceNormal(f)
	u, w := planeBasis(vec3[S]{x, y, z})

	var zero V2
	var vs []sweep.IndexedVertex2D[VertexID, V2]
	for v := range m.FaceVertices(f) {
		p := toVec3[S](m.Pos(v))
		vs = append(vs, sweep.IndexedVertex2D[VertexID, V2]{
			Index: v,
			Vec:   zero.FromXY(p.dot(u), p.dot(w)),
		})
	}
	return vs
}
