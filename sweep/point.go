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
	"fmt"

	"github.com/hajimehoshi/go-halfedge/arena"
	"github.com/hajimehoshi/go-halfedge/vecmath"
)

// IndexedVertex2D is a projected polygon vertex together with the id of the
// mesh vertex it came from.
type IndexedVertex2D[I arena.Index, V any] struct {
	Index I
	Vec   V
}

// EventPoint is a polygon vertex as seen by the sweep. Here, Prev and Next
// are positions in the polygon's vertex list.
type EventPoint[V any] struct {
	Here int
	Prev int
	Next int
	Vec  V
	Type VertexType
}

// NewEventPoint classifies the vertex at position here of the
// counterclockwise polygon vs.
func NewEventPoint[S vecmath.Scalar, I arena.Index, V vecmath.Vector2D[S, V]](here int, vs []IndexedVertex2D[I, V], eps S) EventPoint[V] {
	n := len(vs)
	prev := (here + n - 1) % n
	next := (here + 1) % n
	return EventPoint[V]{
		Here: here,
		Prev: prev,
		Next: next,
		Vec:  vs[here].Vec,
		Type: Classify(vs[prev].Vec, vs[here].Vec, vs[next].Vec, eps),
	}
}

func (e EventPoint[V]) String() string {
	return fmt.Sprintf("%d (%d, %d) %v", e.Here, e.Prev, e.Next, e.Type)
}
