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
	"github.com/hajimehoshi/go-halfedge/arena"
)

// Observer receives the decisions of the sweep as they are made.
type Observer[I arena.Index] interface {
	ObserveVertex(i I, t VertexType)
	ObserveDiagonal(a, b I)
}

type TypedVertex[I arena.Index] struct {
	Index I
	Type  VertexType
}

// Meta is an Observer that records everything it sees.
type Meta[I arena.Index] struct {
	VertexTypes []TypedVertex[I]
	Diagonals   [][2]I
}

func (m *Meta[I]) ObserveVertex(i I, t VertexType) {
	m.UpdateType(i, t)
}

func (m *Meta[I]) ObserveDiagonal(a, b I) {
	m.Diagonals = append(m.Diagonals, [2]I{a, b})
}

// UpdateType records t for i, replacing an earlier record for i.
func (m *Meta[I]) UpdateType(i I, t VertexType) {
	for k := range m.VertexTypes {
		if m.VertexTypes[k].Index == i {
			m.VertexTypes[k].Type = t
			return
		}
	}
	m.VertexTypes = append(m.VertexTypes, TypedVertex[I]{Index: i, Type: t})
}

// Count returns how many recorded vertices have type t.
func (m *Meta[I]) Count(t VertexType) int {
	n := 0
	for _, v := range m.VertexTypes {
		if v.Type == t {
			n++
		}
	}
	return n
}
