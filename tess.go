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
	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-halfedge/sweep"
	"github.com/hajimehoshi/go-halfedge/vecmath"
)

// Strategy selects the triangulator applied to the monotone pieces of a
// face.
type Strategy int

const (
	// StrategySweepLine fans every monotone piece in linear time.
	StrategySweepLine Strategy = iota

	// StrategySweepDynamic minimizes the total diagonal length of every
	// monotone piece.
	StrategySweepDynamic

	// StrategySweepGreedy is reserved and not implemented.
	StrategySweepGreedy
)

func (s Strategy) String() string {
	switch s {
	case StrategySweepLine:
		return "sweep"
	case StrategySweepDynamic:
		return "dynamic"
	case StrategySweepGreedy:
		return "greedy"
	}
	return "unknown"
}

func (s Strategy) MarshalText() ([]byte, error) {
	if s < StrategySweepLine || s > StrategySweepGreedy {
		return nil, errors.Errorf("halfedge: invalid strategy %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "sweep", "":
		*s = StrategySweepLine
	case "dynamic":
		*s = StrategySweepDynamic
	case "greedy":
		*s = StrategySweepGreedy
	default:
		return errors.Errorf("halfedge: unknown strategy %q", text)
	}
	return nil
}

// TesselationMeta collects debugging information about a tessellation.
type TesselationMeta struct {
	Sweep sweep.Meta[VertexID]
}

// TesselationOptions configures Tesselate and TesselateMesh.
type TesselationOptions struct {
	Strategy Strategy `json:"strategy"`

	// Window bounds the dynamic triangulator. 0 means unbounded.
	Window int `json:"window"`

	// Meta receives the sweep trace when not nil.
	Meta *TesselationMeta `json:"-"`
}

func observer(meta *TesselationMeta) sweep.Observer[VertexID] {
	if meta == nil {
		return nil
	}
	return &meta.Sweep
}

// checkPlanar panics if f is flat by contract but not flat in fact.
func checkPlanar[S vecmath.Scalar, V vecmath.Vector[S, V], T vecmath.Transform[V, T], P Payload[S, V, T, P]](m *Mesh[S, V, T, P], f FaceID) {
	fc := m.Face(f)
	assert(!fc.IsDeleted(), "face does not exist")
	if fc.MayBeCurved() {
		return
	}
	assert(m.IsPlanar(f, vecmath.Epsilon[S]()*1000), "face is not planar")
}

// SweepLine triangulates f with the linear monotone triangulator and writes
// the triangles to tri. meta may be nil.
func SweepLine[V2 vecmath.Vector2D[S, V2], S vecmath.Scalar, V vecmath.Vector[S, V], T vecmath.Transform[V, T], P Payload[S, V, T, P]](m *Mesh[S, V, T, P], f FaceID, tri sweep.Sink[VertexID], meta *TesselationMeta) {
	checkPlanar(m, f)
	sweep.SweepLine[S](tri, Vertices2D[V2](m, f), observer(meta))
}

// SweepDynamic triangulates f with the minimum-weight triangulator bounded
// by a window of k vertices. meta may be nil.
func SweepDynamic[V2 vecmath.Vector2D[S, V2], S vecmath.Scalar, V vecmath.Vector[S, V], T vecmath.Transform[V, T], P Payload[S, V, T, P]](m *Mesh[S, V, T, P], f FaceID, tri sweep.Sink[VertexID], k int, meta *TesselationMeta) {
	checkPlanar(m, f)
	sweep.SweepDynamic[S](tri, Vertices2D[V2](m, f), k, observer(meta))
}

// SweepGreedy is reserved for a greedy triangulation of arbitrary polygons.
// It is not implemented and panics.
func SweepGreedy[V2 vecmath.Vector2D[S, V2], S vecmath.Scalar, V vecmath.Vector[S, V], T vecmath.Transform[V, T], P Payload[S, V, T, P]](m *Mesh[S, V, T, P], f FaceID, tri sweep.Sink[VertexID], k int) {
	panic("halfedge: greedy sweep is not implemented")
}

// Tesselate triangulates f as opts says.
func Tesselate[V2 vecmath.Vector2D[S, V2], S vecmath.Scalar, V vecmath.Vector[S, V], T vecmath.Transform[V, T], P Payload[S, V, T, P]](m *Mesh[S, V, T, P], f FaceID, tri sweep.Sink[VertexID], opts *TesselationOptions) {
	if opts == nil {
		opts = &TesselationOptions{}
	}
	switch opts.Strategy {
	case StrategySweepLine:
		SweepLine[V2](m, f, tri, opts.Meta)
	case StrategySweepDynamic:
		SweepDynamic[V2](m, f, tri, opts.Window, opts.Meta)
	case StrategySweepGreedy:
		SweepGreedy[V2](m, f, tri, opts.Window)
	default:
		panic("halfedge: invalid strategy")
	}
}

// TesselateMesh triangulates every face of m and returns the flat index
// list.
func TesselateMesh[V2 vecmath.Vector2D[S, V2], S vecmath.Scalar, V vecmath.Vector[S, V], T vecmath.Transform[V, T], P Payload[S, V, T, P]](m *Mesh[S, V, T, P], opts *TesselationOptions) []VertexID {
	var tri sweep.Triangulation[VertexID]
	for f := range m.Faces() {
		Tesselate[V2](m, f, &tri, opts)
	}
	return tri.Indices
}
