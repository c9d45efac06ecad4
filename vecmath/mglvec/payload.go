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
	"github.com/hajimehoshi/go-halfedge"
)

// Payload2d is a vertex of a planar mesh.
type Payload2d struct {
	Position Vec2
	UV       Vec2
}

func (p Payload2d) Pos() Vec2 {
	return p.Position
}

func (p Payload2d) Transform(t Affine2) Payload2d {
	p.Position = t.Apply(p.Position)
	return p
}

func (p Payload2d) Lerp(o Payload2d, f float64) Payload2d {
	return Payload2d{
		Position: p.Position.Lerp(o.Position, f),
		UV:       p.UV.Lerp(o.UV, f),
	}
}

// Payload3d is a vertex of a mesh in space.
type Payload3d struct {
	Position Vec3
	Normal   Vec3
	UV       Vec2
}

func (p Payload3d) Pos() Vec3 {
	return p.Position
}

func (p Payload3d) Transform(t Affine3) Payload3d {
	p.Position = t.Apply(p.Position)
	p.Normal = t.ApplyVec(p.Normal).Normalize()
	return p
}

func (p Payload3d) Lerp(o Payload3d, f float64) Payload3d {
	return Payload3d{
		Position: p.Position.Lerp(o.Position, f),
		Normal:   p.Normal.Lerp(o.Normal, f).Normalize(),
		UV:       p.UV.Lerp(o.UV, f),
	}
}

// P2 returns a planar payload at (x, y).
func P2(x, y float64) Payload2d {
	return Payload2d{Position: Vec2{x, y}}
}

// P3 returns a spatial payload at (x, y, z).
func P3(x, y, z float64) Payload3d {
	return Payload3d{Position: Vec3{x, y, z}}
}

type (
	Mesh2d = halfedge.Mesh[float64, Vec2, Affine2, Payload2d]
	Mesh3d = halfedge.Mesh[float64, Vec3, Affine3, Payload3d]
)

func NewMesh2d() *Mesh2d {
	return halfedge.NewMesh[float64, Vec2, Affine2, Payload2d]()
}

func NewMesh3d() *Mesh3d {
	return halfedge.NewMesh[float64, Vec3, Affine3, Payload3d]()
}
