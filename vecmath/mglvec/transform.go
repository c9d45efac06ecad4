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

package mglvec

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Affine2 is a homogeneous 2D transform.
type Affine2 mgl64.Mat3

func (Affine2) Identity() Affine2 {
	return Affine2(mgl64.Ident3())
}

func (Affine2) FromTranslation(v Vec2) Affine2 {
	return Affine2(mgl64.Translate2D(v[0], v[1]))
}

func (Affine2) FromScale(v Vec2) Affine2 {
	return Affine2(mgl64.Scale2D(v[0], v[1]))
}

func (Affine2) FromRotationArc(from, to Vec2) Affine2 {
	a := math.Atan2(from.PerpDot(to), from.Dot(to))
	return Affine2(mgl64.HomogRotate2D(a))
}

func (t Affine2) Apply(v Vec2) Vec2 {
	r := mgl64.Mat3(t).Mul3x1(mgl64.Vec3{v[0], v[1], 1})
	return Vec2{r[0], r[1]}
}

func (t Affine2) ApplyVec(v Vec2) Vec2 {
	r := mgl64.Mat3(t).Mul3x1(mgl64.Vec3{v[0], v[1], 0})
	return Vec2{r[0], r[1]}
}

func (t Affine2) Chain(o Affine2) Affine2 {
	return Affine2(mgl64.Mat3(t).Mul3(mgl64.Mat3(o)))
}

// Affine3 is a homogeneous 3D transform.
type Affine3 mgl64.Mat4

func (Affine3) Identity() Affine3 {
	return Affine3(mgl64.Ident4())
}

func (Affine3) FromTranslation(v Vec3) Affine3 {
	return Affine3(mgl64.Translate3D(v[0], v[1], v[2]))
}

func (Affine3) FromScale(v Vec3) Affine3 {
	return Affine3(mgl64.Scale3D(v[0], v[1], v[2]))
}

func (Affine3) FromRotationArc(from, to Vec3) Affine3 {
	q := mgl64.QuatBetweenVectors(from.Normalize().mgl(), to.Normalize().mgl())
	return Affine3(q.Mat4())
}

func (t Affine3) Apply(v Vec3) Vec3 {
	r := mgl64.Mat4(t).Mul4x1(mgl64.Vec4{v[0], v[1], v[2], 1})
	return Vec3{r[0], r[1], r[2]}
}

func (t Affine3) ApplyVec(v Vec3) Vec3 {
	r := mgl64.Mat4(t).Mul4x1(mgl64.Vec4{v[0], v[1], v[2], 0})
	return Vec3{r[0], r[1], r[2]}
}

func (t Affine3) Chain(o Affine3) Affine3 {
	return Affine3(mgl64.Mat4(t).Mul4(mgl64.Mat4(o)))
}
