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

// Package geovec adapts github.com/golang/geo/r3 to the vecmath contracts.
package geovec

import (
	"github.com/golang/geo/r3"

	"github.com/hajimehoshi/go-halfedge"
)

// Vec3 holds the components of an r3.Vector and satisfies
// vecmath.Vector3D.
type Vec3 [3]float64

func (v Vec3) vec() r3.Vector { return r3.Vector{X: v[0], Y: v[1], Z: v[2]} }

func fromR3(r r3.Vector) Vec3 { return Vec3{r.X, r.Y, r.Z} }

func (Vec3) Zero() Vec3 { return Vec3{} }
func (v Vec3) IsZero() bool { return v == Vec3{} }
func (v Vec3) Add(o Vec3) Vec3 { return fromR3(v.vec().Add(o.vec())) }
func (v Vec3) Sub(o Vec3) Vec3 { return fromR3(v.vec().Sub(o.vec())) }
func (v Vec3) Mul(s float64) Vec3 { return fromR3(v.vec().Mul(s)) }
func (v Vec3) Dot(o Vec3) float64 { return v.vec().Dot(o.vec()) }
func (v Vec3) Cross(o Vec3) Vec3 { return fromR3(v.vec().Cross(o.vec())) }
func (v Vec3) Len() float64 { return v.vec().Norm() }
func (v Vec3) LenSqr() float64 { return v.vec().Norm2() }
func (v Vec3) Distance(o Vec3) float64 { return v.vec().Distance(o.vec()) }
func (v Vec3) DistanceSqr(o Vec3) float64 { return v.vec().Sub(o.vec()).Norm2() }
func (v Vec3) Normalize() Vec3 { return fromR3(v.vec().Normalize()) }
func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }
func (Vec3) W() float64 { return 0 }

func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Mul(t))
}

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	d := v.vec().Sub(o.vec()).Abs()
	return d.X <= eps && d.Y <= eps && d.Z <= eps
}

func (Vec3) FromXYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Payload is a vertex position with nothing attached.
type Payload struct {
	Position Vec3
}

func (p Payload) Pos() Vec3 {
	return p.Position
}

func (p Payload) Transform(t Affine3) Payload {
	return Payload{Position: t.Apply(p.Position)}
}

func (p Payload) Lerp(o Payload, f float64) Payload {
	return Payload{Position: p.Position.Lerp(o.Position, f)}
}

// P returns a payload at (x, y, z).
func P(x, y, z float64) Payload {
	return Payload{Position: Vec3{x, y, z}}
}

type Mesh = halfedge.Mesh[float64, Vec3, Affine3, Payload]

func NewMesh() *Mesh {
	return halfedge.NewMesh[float64, Vec3, Affine3, Payload]()
}
