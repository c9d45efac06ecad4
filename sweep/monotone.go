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
	"github.com/hajimehoshi/go-halfedge/vecmath"
)

// assertMonotone panics unless poly turns between going down and going up
// exactly twice, at its top and bottom vertex.
func assertMonotone[S vecmath.Scalar, V vecmath.Vector2D[S, V]](poly []int, pts []V) {
	n := len(poly)
	changes := 0
	for k := 0; k < n; k++ {
		a, b, c := pts[poly[k]], pts[poly[(k+1)%n]], pts[poly[(k+2)%n]]
		if above[S](a, b) != above[S](b, c) {
			changes++
		}
	}
	assert(changes == 2, "polygon is not y-monotone")
}

type chainPoint struct {
	pos  int
	left bool
}

// LinearTriangulator triangulates a monotone polygon in linear time by
// merging its two chains and fanning from a stack.
type LinearTriangulator[S vecmath.Scalar, V vecmath.Vector2D[S, V]] struct{}

func (LinearTriangulator[S, V]) Triangulate(poly []int, pts []V, emit func(a, b, c int)) {
	n := len(poly)
	assert(n >= 3, "a polygon needs at least three vertices")
	if n == 3 {
		emit(poly[0], poly[1], poly[2])
		return
	}
	assertMonotone[S](poly, pts)

	at := func(pos int) V { return pts[poly[pos]] }
	tri := func(a, b, c int) {
		if orient[S](at(a), at(b), at(c)) < 0 {
			b, c = c, b
		}
		emit(poly[a], poly[b], poly[c])
	}

	top := 0
	for i := 1; i < n; i++ {
		if above[S](at(i), at(top)) {
			top = i
		}
	}

	// Going forward from the top walks down the left chain, going backward
	// walks down the right chain.
	sorted := []chainPoint{{pos: top}}
	var bottom int
	for l, r := 1, 1; ; {
		lp := (top + l) % n
		rp := (top - r + n) % n
		if lp == rp {
			bottom = lp
			break
		}
		if above[S](at(lp), at(rp)) {
			sorted = append(sorted, chainPoint{pos: lp, left: true})
			l++
		} else {
			sorted = append(sorted, chainPoint{pos: rp})
			r++
		}
	}

	stack := []chainPoint{sorted[0], sorted[1]}
	for i := 2; i < len(sorted); i++ {
		p := sorted[i]
		if p.left != stack[len(stack)-1].left {
			for j := 0; j+1 < len(stack); j++ {
				tri(p.pos, stack[j].pos, stack[j+1].pos)
			}
			stack = append(stack[:0], sorted[i-1], p)
			continue
		}

		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for len(stack) > 0 {
			q := stack[len(stack)-1]
			var inside bool
			if p.left {
				inside = orient[S](at(p.pos), at(q.pos), at(v.pos)) > 0
			} else {
				inside = orient[S](at(p.pos), at(v.pos), at(q.pos)) > 0
			}
			if !inside {
				break
			}
			tri(p.pos, v.pos, q.pos)
			v = q
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, v, p)
	}

	for j := 0; j+1 < len(stack); j++ {
		tri(bottom, stack[j].pos, stack[j+1].pos)
	}
}
