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
	"github.com/hajimehoshi/go-halfedge/vecmath"
)

// above reports whether p is swept before q: higher y first, smaller x first
// on equal y.
func above[S vecmath.Scalar, V vecmath.Vector2D[S, V]](p, q V) bool {
	if p.Y() != q.Y() {
		return p.Y() > q.Y()
	}
	return p.X() < q.X()
}

// orient returns twice the signed area of the triangle (a, b, c). It is
// positive when the triangle is counterclockwise.
func orient[S vecmath.Scalar, V vecmath.Vector2D[S, V]](a, b, c V) S {
	return b.Sub(a).PerpDot(c.Sub(a))
}

func left[S vecmath.Scalar, V vecmath.Vector2D[S, V]](a, b, c V) bool {
	return orient[S](a, b, c) > 0
}

func leftOn[S vecmath.Scalar, V vecmath.Vector2D[S, V]](a, b, c V) bool {
	return orient[S](a, b, c) >= 0
}

func collinear[S vecmath.Scalar, V vecmath.Vector2D[S, V]](a, b, c V) bool {
	return orient[S](a, b, c) == 0
}

// between reports whether c lies on the closed segment ab, given that the
// three points are collinear.
func between[S vecmath.Scalar, V vecmath.Vector2D[S, V]](a, b, c V) bool {
	if !collinear[S](a, b, c) {
		return false
	}
	if a.X() != b.X() {
		return (a.X() <= c.X() && c.X() <= b.X()) || (a.X() >= c.X() && c.X() >= b.X())
	}
	return (a.Y() <= c.Y() && c.Y() <= b.Y()) || (a.Y() >= c.Y() && c.Y() >= b.Y())
}

// intersectProp reports whether ab and cd cross at a point interior to both.
func intersectProp[S vecmath.Scalar, V vecmath.Vector2D[S, V]](a, b, c, d V) bool {
	if collinear[S](a, b, c) || collinear[S](a, b, d) || collinear[S](c, d, a) || collinear[S](c, d, b) {
		return false
	}
	return left[S](a, b, c) != left[S](a, b, d) && left[S](c, d, a) != left[S](c, d, b)
}

func intersect[S vecmath.Scalar, V vecmath.Vector2D[S, V]](a, b, c, d V) bool {
	if intersectProp[S](a, b, c, d) {
		return true
	}
	return between[S](a, b, c) || between[S](a, b, d) || between[S](c, d, a) || between[S](c, d, b)
}

// polygon is a view of a simple counterclockwise polygon through a list of
// indices into pts.
type polygon[S vecmath.Scalar, V vecmath.Vector2D[S, V]] struct {
	idx []int
	pts []V
}

func (p polygon[S, V]) n() int { return len(p.idx) }

func (p polygon[S, V]) at(i int) V { return p.pts[p.idx[i]] }

// inCone reports whether the segment from a to b starts into the interior
// of the polygon at a.
func (p polygon[S, V]) inCone(a, b int) bool {
	n := p.n()
	a0, a1 := p.at((a+n-1)%n), p.at((a+1)%n)
	pa, pb := p.at(a), p.at(b)
	if leftOn[S](pa, a1, a0) {
		return left[S](pa, pb, a0) && left[S](pb, pa, a1)
	}
	return !(leftOn[S](pa, pb, a1) && leftOn[S](pb, pa, a0))
}

// diagonalie reports whether ab touches no polygon edge apart from the ones
// incident to a or b.
func (p polygon[S, V]) diagonalie(a, b int) bool {
	n := p.n()
	for c := 0; c < n; c++ {
		c1 := (c + 1) % n
		if c == a || c1 == a || c == b || c1 == b {
			continue
		}
		if intersect[S](p.at(a), p.at(b), p.at(c), p.at(c1)) {
			return false
		}
	}
	return true
}

// diagonal reports whether ab is a proper internal diagonal.
func (p polygon[S, V]) diagonal(a, b int) bool {
	return p.inCone(a, b) && p.inCone(b, a) && p.diagonalie(a, b)
}

// area returns the signed area of the polygon.
func (p polygon[S, V]) area() S {
	var a S
	n := p.n()
	for i := 0; i < n; i++ {
		a += p.at(i).PerpDot(p.at((i + 1) % n))
	}
	return a / 2
}
