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

package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/hajimehoshi/go-halfedge"
	"github.com/hajimehoshi/go-halfedge/sweep"
	"github.com/hajimehoshi/go-halfedge/vecmath/mglvec"
)

// buildMesh adds every polygon to a fresh mesh and extrudes the ones that
// ask for it.
func buildMesh(polys []Polygon) (*mglvec.Mesh3d, error) {
	m := mglvec.NewMesh3d()
	for _, p := range polys {
		ps := make([]mglvec.Payload3d, len(p.Points))
		for i, q := range p.Points {
			ps[i] = mglvec.P3(q[0], q[1], q[2])
		}
		f := m.AddPolygon(ps, p.Curved)
		if p.Extrude != nil {
			d := *p.Extrude
			m.Extrude(m.Twin(m.Face(f).EdgeID()), mglvec.Vec3{d[0], d[1], d[2]}, true)
		}
	}
	if err := m.Check(); err != nil {
		return nil, errors.Wrap(err, "meshsnap: broken mesh")
	}
	return m, nil
}

// faceTriangles is the triangulation of one face.
type faceTriangles struct {
	face    halfedge.FaceID
	indices []halfedge.VertexID
}

// tesselateFace triangulates f into a private buffer and verifies the
// result. Contract violations inside the kernel come back as errors.
func tesselateFace(m *mglvec.Mesh3d, f halfedge.FaceID, opts halfedge.TesselationOptions) (tris faceTriangles, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("meshsnap: face %d: %v", f, r)
		}
	}()
	opts.Meta = nil
	var tri sweep.Triangulation[halfedge.VertexID]
	halfedge.Tesselate[mglvec.Vec2](m, f, &tri, &opts)
	if err := sweep.Verify[float64](tri.Indices, halfedge.Vertices2D[mglvec.Vec2](m, f)); err != nil {
		return faceTriangles{}, errors.Wrapf(err, "meshsnap: face %d", f)
	}
	return faceTriangles{face: f, indices: tri.Indices}, nil
}

// tesselateAll triangulates every face of m on up to workers goroutines.
// The mesh is only read while they run.
func tesselateAll(ctx context.Context, m *mglvec.Mesh3d, opts halfedge.TesselationOptions, workers int) ([]faceTriangles, error) {
	var faces []halfedge.FaceID
	for f := range m.Faces() {
		faces = append(faces, f)
	}

	out := make([]faceTriangles, len(faces))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range faces {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := tesselateFace(m, f, opts)
			if err != nil {
				return err
			}
			out[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func summary(tris []faceTriangles) string {
	n := 0
	for _, t := range tris {
		n += len(t.indices) / 3
	}
	return fmt.Sprintf("%d faces, %d triangles", len(tris), n)
}
