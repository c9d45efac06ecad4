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

package geovec

import (
	"math"

	"github.com/golang/geo/r3"
)

// Affine3 maps p to the linear part applied to p plus the translation.
// Rows holds the rows of the linear part.
type Affine3 struct {
	Rows        [3]r3.Vector
	Translation r3.Vector
}

func (Affine3) Identity() Affine3 {
	return Affine3{Rows: [3]r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}}
}

func (t Affine3) FromTranslation(v Vec3) Affine3 {
	a := t.Identity()
	a.Translation = v.vec()
	return a
}

func (Affine3) FromScale(v Vec3) Affine3 {
	return Affine3{Rows: [3]r3.Vector{{X: v[0]}, {Y: v[1]}, {Z: v[2]}}}
}

// FromRotationArc returns the shortest rotation taking the direction of from
// onto the direction of to. Opposite directions rotate half a turn around
// an axis orthogonal to from.
func (t Affine3) FromRotationArc(from, to Vec3) Affine3 {
	f, g := from.vec().Normalize(), to.vec().Normalize()
	axis := f.Cross(g)
	s, c := axis.Norm(), f.Dot(g)
	if s == 0 {
		if c > 0 {
			return t.Identity()
		}
		axis, s, c = f.Ortho(), 0, -1
	} else {
		axis = axis.Mul(1 / s)
	}
	return rotation(axis, math.Atan2(s, c))
}

// rotation returns the rotation by angle around the unit vector k.
func rotation(k r3.Vector, angle float64) Affine3 {
	s, c := math.Sincos(angle)
	v := 1 - c
	return Affine3{Rows: [3]r3.Vector{
		{X: c + k.X*k.X*v, Y: k.X*k.Y*v - k.Z*s, Z: k.X*k.Z*v + k.Y*s},
		{X: k.Y*k.X*v + k.Z*s, Y: c + k.Y*k.Y*v, Z: k.Y*k.Z*v - k.X*s},
		{X: k.Z*k.X*v - k.Y*s, Y: k.Z*k.Y*v + k.X*s, Z: c + k.Z*k.Z*v},
	}}
}

func (t Affine3) Apply(v Vec3) Vec3 {
	return fromR3(t.linear(v.vec()).Add(t.Translation))
}

func (t Affine3) ApplyVec(v Vec3) Vec3 {
	return fromR3(t.linear(v.vec()))
}

func (t Affine3) linear(v r3.Vector) r3.Vector {
	return r3.Vector{X: t.Rows[0].Dot(v), Y: t.Rows[1].Dot(v), Z: t.Rows[2].Dot(v)}
}

func (t Affine3) Chain(o Affine3) Affine3 {
	var r Affine3
	cols := [3]r3.Vector{
		{X: o.Rows[0].X, Y: o.Rows[1].X, Z: o.Rows[2].X},
		{X: o.Rows[0].Y, Y: o.Rows[1].Y, Z: o.Rows[2].Y},
		{X: o.Rows[0].Z, Y: o.Rows[1].Z, Z: o.Rows[2].Z},
	}
	for i := range r.Rows {
		r.Rows[i] = r3.Vector{X: t.Rows[i].Dot(cols[0]), Y: t.Rows[i].Dot(cols[1]), Z: t.Rows[i].Dot(cols[2])}
	}
	r.Translation = t.linear(o.Translation).Add(t.Translation)
	return r
}
