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
	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-halfedge/arena"
	"github.com/hajimehoshi/go-halfedge/vecmath"
)

// Verify checks that indices is a triangulation of the counterclockwise
// simple polygon vs: n-2 counterclockwise triangles over the polygon's own
// vertices, no two of them overlapping, covering the polygon's area.
func Verify[S vecmath.Scalar, I arena.Index, V vecmath.Vector2D[S, V]](indices []I, vs []IndexedVertex2D[I, V]) error {
	if len(indices)%3 != 0 {
		return errors.Errorf("sweep: index count %d is not a multiple of 3", len(indices))
	}
	n := len(vs)
	if n < 3 {
		if len(indices) != 0 {
			return errors.Errorf("sweep: %d triangles for a degenerate polygon", len(indices)/3)
		}
		return nil
	}
	if got, want := len(indices)/3, n-2; got != want {
		return errors.Errorf("sweep: got %d triangles, want %d", got, want)
	}

	pos := make(map[I]V, n)
	for _, v := range vs {
		pos[v.Index] = v.Vec
	}

	type triangle [3]V
	tris := make([]triangle, 0, n-2)
	var sum S
	for i := 0; i < len(indices); i += 3 {
		var t triangle
		for k := 0; k < 3; k++ {
			v, ok := pos[indices[i+k]]
			if !ok {
				return errors.Errorf("sweep: triangle %d refers to unknown vertex %v", i/3, indices[i+k])
			}
			t[k] = v
		}
		a := orient[S](t[0], t[1], t[2])
		if a <= 0 {
			return errors.Errorf("sweep: triangle %d (%v, %v, %v) is not counterclockwise", i/3, indices[i], indices[i+1], indices[i+2])
		}
		sum += a / 2
		tris = append(tris, t)
	}

	pts := make([]V, n)
	idx := make([]int, n)
	for i, v := range vs {
		pts[i] = v.Vec
		idx[i] = i
	}
	area := polygon[S, V]{idx: idx, pts: pts}.area()
	tol := vecmath.Epsilon[S]() * 1000 * S(n) * max(1, vecmath.Abs(area))
	if !vecmath.IsAbout(sum, area, tol) {
		return errors.Errorf("sweep: triangles cover area %v, polygon has %v", sum, area)
	}

	for i := range tris {
		for j := i + 1; j < len(tris); j++ {
			for a := 0; a < 3; a++ {
				for b := 0; b < 3; b++ {
					if intersectProp[S](tris[i][a], tris[i][(a+1)%3], tris[j][b], tris[j][(b+1)%3]) {
						return errors.Errorf("sweep: triangles %d and %d overlap", i, j)
					}
				}
			}
		}
	}
	return nil
}
