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

type VertexType int

const (
	Undefined VertexType = iota
	Start
	End
	Split
	Merge
	Regular
)

func (t VertexType) String() string {
	switch t {
	case Start:
		return "start"
	case End:
		return "end"
	case Split:
		return "split"
	case Merge:
		return "merge"
	case Regular:
		return "regular"
	}
	return "undefined"
}

// Classify returns the sweep type of here in a counterclockwise polygon
// where prev and next are its neighbors. A turn within eps of zero counts as
// convex.
func Classify[S vecmath.Scalar, V vecmath.Vector2D[S, V]](prev, here, next V, eps S) VertexType {
	prevBelow := above[S](here, prev)
	nextBelow := above[S](here, next)
	convex := here.Sub(prev).PerpDot(next.Sub(here)) >= -eps

	switch {
	case prevBelow && nextBelow:
		if convex {
			return Start
		}
		return Split
	case !prevBelow && !nextBelow:
		if convex {
			return End
		}
		return Merge
	}
	return Regular
}

// IsLeftChain reports whether a regular vertex lies on the left side of the
// polygon, with the interior to its right.
func IsLeftChain[S vecmath.Scalar, V vecmath.Vector2D[S, V]](prev, here V) bool {
	return above[S](prev, here)
}
