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
	"sort"

	"github.com/hajimehoshi/go-halfedge/vecmath"
)

// region is an interval of the polygon interior crossing the sweep line.
// edge is the position of the vertex whose outgoing edge bounds the
// interval on the left.
type region struct {
	edge   int
	helper int
}

// dict holds the regions crossing the sweep line ordered from left to
// right. Edges in the dictionary never cross, so the order stays valid as
// the sweep line moves down.
type dict[S vecmath.Scalar, V vecmath.Vector2D[S, V]] struct {
	regions []region
	pts     []V
}

// xAt returns the x coordinate of edge at the height of p.
func (d *dict[S, V]) xAt(edge int, p V) S {
	a := d.pts[edge]
	b := d.pts[(edge+1)%len(d.pts)]
	if a.Y() == b.Y() {
		lo, hi := a.X(), b.X()
		if lo > hi {
			lo, hi = hi, lo
		}
		return min(max(p.X(), lo), hi)
	}
	return a.X() + (p.Y()-a.Y())*(b.X()-a.X())/(b.Y()-a.Y())
}

// search returns the index of the first region whose edge lies strictly to
// the right of p.
func (d *dict[S, V]) search(p V) int {
	return sort.Search(len(d.regions), func(i int) bool {
		return d.xAt(d.regions[i].edge, p) > p.X()
	})
}

func (d *dict[S, V]) insert(edge, helper int) {
	p := d.pts[edge]
	i := d.search(p)
	d.regions = append(d.regions, region{})
	copy(d.regions[i+1:], d.regions[i:])
	d.regions[i] = region{edge: edge, helper: helper}
}

// find returns the index of the region bounded by edge. p must be a point
// of the edge at the current sweep height.
func (d *dict[S, V]) find(edge int, p V) int {
	k := d.search(p)
	for off := 0; ; off++ {
		hi, lo := k+off, k-1-off
		if hi >= len(d.regions) && lo < 0 {
			break
		}
		if hi < len(d.regions) && d.regions[hi].edge == edge {
			return hi
		}
		if lo >= 0 && d.regions[lo].edge == edge {
			return lo
		}
	}
	panic("sweep: edge is not in the dictionary")
}

func (d *dict[S, V]) delete(i int) {
	d.regions = append(d.regions[:i], d.regions[i+1:]...)
}

// leftOf returns the index of the region directly left of p.
func (d *dict[S, V]) leftOf(p V) int {
	i := d.search(p) - 1
	if i < 0 {
		panic("sweep: no region to the left of the vertex")
	}
	return i
}
