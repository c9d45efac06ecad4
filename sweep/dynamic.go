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

// DynamicTriangulator triangulates a monotone polygon so that the total
// weight of its diagonals is minimal.
//
// Window bounds the search: for a sub-polygon spanning more than Window
// vertices, only apexes within Window positions of either end are tried.
// Window <= 0 searches every apex. If the window rules out every
// triangulation, the polygon is handed to LinearTriangulator.
//
// Weight defaults to the Euclidean length.
type DynamicTriangulator[S vecmath.Scalar, V vecmath.Vector2D[S, V]] struct {
	Window int
	Weight func(a, b V) S
}

func (d DynamicTriangulator[S, V]) Triangulate(poly []int, pts []V, emit func(a, b, c int)) {
	n := len(poly)
	assert(n >= 3, "a polygon needs at least three vertices")
	if n == 3 {
		emit(poly[0], poly[1], poly[2])
		return
	}
	assertMonotone[S](poly, pts)

	weight := d.Weight
	if weight == nil {
		weight = func(a, b V) S { return a.Distance(b) }
	}
	p := polygon[S, V]{idx: poly, pts: pts}

	const (
		unknown int8 = iota
		yes
		no
	)
	valid := make([]int8, n*n)
	isValid := func(i, j int) bool {
		if j == i+1 || (i == 0 && j == n-1) {
			return true
		}
		switch valid[i*n+j] {
		case yes:
			return true
		case no:
			return false
		}
		ok := p.diagonal(i, j)
		if ok {
			valid[i*n+j] = yes
		} else {
			valid[i*n+j] = no
		}
		return ok
	}

	cost := make([]S, n*n)
	split := make([]int, n*n)
	for i := range split {
		split[i] = -1
	}
	feasible := func(i, j int) bool {
		return j-i < 2 || split[i*n+j] >= 0
	}
	diagWeight := func(i, j int) S {
		if j-i < 2 {
			return 0
		}
		return weight(p.at(i), p.at(j))
	}

	try := func(i, m, j int) {
		if !isValid(i, m) || !isValid(m, j) || !feasible(i, m) || !feasible(m, j) {
			return
		}
		if orient[S](p.at(i), p.at(m), p.at(j)) <= 0 {
			return
		}
		c := cost[i*n+m] + cost[m*n+j] + diagWeight(i, m) + diagWeight(m, j)
		if split[i*n+j] < 0 || c < cost[i*n+j] {
			cost[i*n+j] = c
			split[i*n+j] = m
		}
	}

	for length := 2; length < n; length++ {
		for i := 0; i+length < n; i++ {
			j := i + length
			if d.Window <= 0 || length <= 2*d.Window {
				for m := i + 1; m < j; m++ {
					try(i, m, j)
				}
				continue
			}
			for m := i + 1; m <= i+d.Window; m++ {
				try(i, m, j)
			}
			for m := j - d.Window; m < j; m++ {
				try(i, m, j)
			}
		}
	}

	if split[n-1] < 0 {
		LinearTriangulator[S, V]{}.Triangulate(poly, pts, emit)
		return
	}

	stack := [][2]int{{0, n - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, j := s[0], s[1]
		if j-i < 2 {
			continue
		}
		m := split[i*n+j]
		emit(poly[i], poly[m], poly[j])
		stack = append(stack, [2]int{i, m}, [2]int{m, j})
	}
}
