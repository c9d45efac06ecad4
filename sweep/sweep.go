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

// Package sweep triangulates simple polygons by splitting them into
// y-monotone pieces with a sweep line and triangulating every piece.
package sweep

import (
	"container/heap"
	"math"

	"github.com/hajimehoshi/go-halfedge/arena"
	"github.com/hajimehoshi/go-halfedge/vecmath"
)

func assert(cond bool, msg string) {
	if !cond {
		panic("sweep: " + msg)
	}
}

// Decomposition is the result of splitting a polygon into monotone pieces.
// All indices are positions in the input vertex list.
type Decomposition struct {
	Types     []VertexType
	Diagonals [][2]int
	Polygons  [][]int
}

// Decompose sweeps the counterclockwise simple polygon vs from top to bottom
// and inserts the diagonals that remove every split and merge vertex.
// obs may be nil.
func Decompose[S vecmath.Scalar, I arena.Index, V vecmath.Vector2D[S, V]](vs []IndexedVertex2D[I, V], eps S, obs Observer[I]) Decomposition {
	n := len(vs)
	assert(n >= 3, "a polygon needs at least three vertices")

	pts := make([]V, n)
	for i, v := range vs {
		pts[i] = v.Vec
	}

	q := make(pq[S, V], 0, n)
	types := make([]VertexType, n)
	for i := range vs {
		e := NewEventPoint(i, vs, eps)
		types[i] = e.Type
		q = append(q, e)
		if obs != nil {
			obs.ObserveVertex(vs[i].Index, e.Type)
		}
	}
	heap.Init(&q)

	var diagonals [][2]int
	seen := map[[2]int]struct{}{}
	diagonal := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		if b == a+1 || (a == 0 && b == n-1) {
			return
		}
		if _, ok := seen[[2]int{a, b}]; ok {
			return
		}
		seen[[2]int{a, b}] = struct{}{}
		diagonals = append(diagonals, [2]int{a, b})
		if obs != nil {
			obs.ObserveDiagonal(vs[a].Index, vs[b].Index)
		}
	}
	connectMerge := func(v, helper int) {
		if types[helper] == Merge {
			diagonal(v, helper)
		}
	}

	d := &dict[S, V]{pts: pts}
	for q.Len() > 0 {
		e := heap.Pop(&q).(EventPoint[V])
		v := e.Here
		switch e.Type {
		case Start:
			d.insert(v, v)

		case End:
			k := d.find(e.Prev, e.Vec)
			connectMerge(v, d.regions[k].helper)
			d.delete(k)

		case Split:
			k := d.leftOf(e.Vec)
			diagonal(v, d.regions[k].helper)
			d.regions[k].helper = v
			d.insert(v, v)

		case Merge:
			k := d.find(e.Prev, e.Vec)
			connectMerge(v, d.regions[k].helper)
			d.delete(k)
			k = d.leftOf(e.Vec)
			connectMerge(v, d.regions[k].helper)
			d.regions[k].helper = v

		case Regular:
			if IsLeftChain[S](pts[e.Prev], e.Vec) {
				k := d.find(e.Prev, e.Vec)
				connectMerge(v, d.regions[k].helper)
				d.delete(k)
				d.insert(v, v)
				break
			}
			k := d.leftOf(e.Vec)
			connectMerge(v, d.regions[k].helper)
			d.regions[k].helper = v
		}
	}

	return Decomposition{
		Types:     types,
		Diagonals: diagonals,
		Polygons:  splitPolygons[S](pts, diagonals),
	}
}

// splitPolygons walks the planar graph formed by the polygon boundary and
// the diagonals and returns its bounded faces, each counterclockwise.
func splitPolygons[S vecmath.Scalar, V vecmath.Vector2D[S, V]](pts []V, diagonals [][2]int) [][]int {
	n := len(pts)
	if len(diagonals) == 0 {
		poly := make([]int, n)
		for i := range poly {
			poly[i] = i
		}
		return [][]int{poly}
	}

	out := make([][]int, n)
	for i := range out {
		out[i] = []int{(i + 1) % n}
	}
	for _, d := range diagonals {
		out[d[0]] = append(out[d[0]], d[1])
		out[d[1]] = append(out[d[1]], d[0])
	}

	angle := func(from, to int) float64 {
		d := pts[to].Sub(pts[from])
		return math.Atan2(float64(d.Y()), float64(d.X()))
	}

	// next returns the edge leaving w that comes first clockwise after w->u,
	// which keeps the face being traced on the left.
	next := func(u, w int) int {
		ref := angle(w, u)
		best, bestTurn := -1, math.Inf(1)
		for _, t := range out[w] {
			if t == u {
				continue
			}
			turn := ref - angle(w, t)
			for turn <= 0 {
				turn += 2 * math.Pi
			}
			for turn > 2*math.Pi {
				turn -= 2 * math.Pi
			}
			if turn < bestTurn {
				best, bestTurn = t, turn
			}
		}
		assert(best >= 0, "dangling diagonal")
		return best
	}

	visited := map[[2]int]struct{}{}
	limit := n + 2*len(diagonals)
	var polys [][]int
	for a := 0; a < n; a++ {
		for _, b := range out[a] {
			if _, ok := visited[[2]int{a, b}]; ok {
				continue
			}
			var poly []int
			u, w := a, b
			for {
				visited[[2]int{u, w}] = struct{}{}
				poly = append(poly, u)
				assert(len(poly) <= limit, "face walk does not close")
				u, w = w, next(u, w)
				if u == a && w == b {
					break
				}
			}
			polys = append(polys, poly)
		}
	}
	return polys
}
