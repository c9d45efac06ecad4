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

// Package mglvec adapts github.com/go-gl/mathgl/mgl64 to the vecmath
// contracts.
package mglvec

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hajimehoshi/go-halfedge/vecmath"
)

type Vec2 mgl64.Vec2

func (v Vec2) mgl() mgl64.Vec2 { return mgl64.Vec2(v) }

func (Vec2) Zero() Vec2 { return Vec2{} }
func (v Vec2) IsZero() bool { return v == Vec2{} }
func (v Vec2) Add(o Vec2) Vec2 { return Vec2(v.mgl().Add(o.mgl())) }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2(v.mgl().Sub(o.mgl())) }
func (v Vec2) Mul(s float64) Vec2 { return Vec2(v.mgl().Mul(s)) }
func (v Vec2) Dot(o Vec2) float64 { return v.mgl().Dot(o.mgl()) }
func (v Vec2) Len() float64 { return v.mgl().Len() }
func (v Vec2) LenSqr() float64 { return v.mgl().LenSqr() }
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Len() }
func (v Vec2) DistanceSqr(o Vec2) float64 { return v.Sub(o).LenSqr() }
func (v Vec2) X() float64 { return v[0] }
func (v Vec2) Y() float64 { return v[1] }
func (Vec2) Z() float64 { return 0 }
func (Vec2) W() float64 { return 0 }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	if v.IsZero() {
		return v
	}
	return Vec2(v.mgl().Normalize())
}

func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Mul(t))
}

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return vecmath.IsAbout(v[0], o[0], eps) && vecmath.IsAbout(v[1], o[1], eps)
}

func (v Vec2) PerpDot(o Vec2) float64 {
	return v[0]*o[1] - v[1]*o[0]
}

func (v Vec2) AngleTri(a, b Vec2) float64 {
	da, db := a.Sub(v), b.Sub(v)
	return math.Atan2(da.PerpDot(db), da.Dot(db))
}

func (Vec2) FromXY(x, y float64) Vec2 {
	return Vec2{x, y}
}

type Vec3 mgl64.Vec3

func (v Vec3) mgl() mgl64.Vec3 { return mgl64.Vec3(v) }

func (Vec3) Zero() Vec3 { return Vec3{} }
func (v Vec3) IsZero() bool { return v == Vec3{} }
func (v Vec3) Add(o Vec3) Vec3 { return Vec3(v.mgl().Add(o.mgl())) }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3(v.mgl().Sub(o.mgl())) }
func (v Vec3) Mul(s float64) Vec3 { return Vec3(v.mgl().Mul(s)) }
func (v Vec3) Dot(o Vec3) float64 { return v.mgl().Dot(o.mgl()) }
func (v Vec3) Cross(o Vec3) Vec3 { return Vec3(v.mgl().Cross(o.mgl())) }
func (v Vec3) Len() float64 { return v.mgl().Len() }
func (v Vec3) LenSqr() float64 { return v.mgl().LenSqr() }
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Len() }
func (v Vec3) DistanceSqr(o Vec3) float64 { return v.Sub(o).LenSqr() }
func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }
func (Vec3) W() float64 { return 0 }

func (v Vec3) Normalize() Vec3 {
	if v.IsZero() {
		return v
	}
	return Vec3(v.mgl().Normalize())
}

func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Mul(t))
}

func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	for i := range v {
		if !vecmath.IsAbout(v[i], o[i], eps) {
			return false
		}
	}
	return true
}

func (Vec3) FromXYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}
