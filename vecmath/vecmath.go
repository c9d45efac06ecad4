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

// Package vecmath declares the vector and transform capabilities the mesh
// kernel needs from a math backend.
package vecmath

import (
	"math"
	"unsafe"
)

// Scalar is a floating point coordinate type.
type Scalar interface {
	~float32 | ~float64
}

// Vector is a position or direction of any dimension up to four. Missing
// components read as zero.
type Vector[S Scalar, V any] interface {
	Zero() V
	IsZero() bool
	Add(o V) V
	Sub(o V) V
	Mul(s S) V
	Dot(o V) S
	Len() S
	LenSqr() S
	Distance(o V) S
	DistanceSqr(o V) S
	Normalize() V
	Lerp(o V, t S) V
	ApproxEqual(o V, eps S) bool
	X() S
	Y() S
	Z() S
	W() S
}

// Vector2D is a Vector in the plane.
type Vector2D[S Scalar, V any] interface {
	Vector[S, V]

	// PerpDot returns the z component of the cross product.
	PerpDot(o V) S

	// AngleTri returns the signed angle at the receiver between a and b.
	AngleTri(a, b V) S

	FromXY(x, y S) V
}

// Vector3D is a Vector in space.
type Vector3D[S Scalar, V any] interface {
	Vector[S, V]
	Cross(o V) V
	FromXYZ(x, y, z S) V
}

// Transform is an affine transform acting on V.
type Transform[V, T any] interface {
	Identity() T
	FromTranslation(v V) T
	FromScale(v V) T

	// FromRotationArc returns the rotation taking the direction from onto to.
	FromRotationArc(from, to V) T

	// Apply transforms a point.
	Apply(v V) V

	// ApplyVec transforms a direction, ignoring translation.
	ApplyVec(v V) V

	// Chain returns the transform that applies o first and then t.
	Chain(o T) T
}

const (
	float32Epsilon = 1.1920929e-07
	float64Epsilon = 2.220446049250313e-16
)

// Epsilon returns the machine epsilon of S.
func Epsilon[S Scalar]() S {
	var s S
	if unsafe.Sizeof(s) == 4 {
		return S(float32Epsilon)
	}
	return S(float64Epsilon)
}

func Abs[S Scalar](a S) S {
	if a < 0 {
		return -a
	}
	return a
}

func Sqrt[S Scalar](a S) S {
	return S(math.Sqrt(float64(a)))
}

// IsAbout reports whether a and b differ by at most eps.
func IsAbout[S Scalar](a, b, eps S) bool {
	return Abs(a-b) <= eps
}
