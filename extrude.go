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

// Extrude extrudes the boundary loop of e along dir and closes the far end
// if close is set. See ExtrudeEx.
func (m *Mesh[S, V, T, P]) Extrude(e EdgeID, dir V, close bool) FaceID {
	var t T
	return m.ExtrudeEx(e, t.FromTranslation(dir), close, false)
}

// ExtrudeEx walks the boundary loop of e backward, copies every vertex on it
// through t, and closes one quadrilateral side face per boundary edge. If
// close is set, the loop of copied vertices becomes a cap face, which is
// returned. Otherwise ExtrudeEx returns NoFace.
func (m *Mesh[S, V, T, P]) ExtrudeEx(e EdgeID, t T, close, curved bool) FaceID {
	assert(m.edges.Get(e).face == NoFace, "only boundary edges can be extruded")

	var loop []EdgeID
	for c := range m.EdgesFaceBack(e) {
		loop = append(loop, c)
	}
	assert(len(loop) >= 2, "boundary loop is too short")

	var second, last VertexID
	for i, c := range loop {
		o := m.Origin(c)
		p := m.vertices.Get(o).payload.Transform(t)
		var curr VertexID
		if i == 0 {
			curr, _ = m.addVertexAfter(m.Prev(e), p)
			second = curr
		} else {
			curr, _ = m.AddVertex(last, p)
			m.CloseFaceWithEdge(last, curr, o, curved)
		}
		last = curr
		if i == len(loop)-1 {
			m.CloseFaceWithEdge(o, curr, second, curved)
		}
	}

	if !close {
		return NoFace
	}
	capEdge, ok := m.EdgeBetween(second, last)
	assert(ok, "extruded loop is not connected")
	return m.CloseFaceLoop(capEdge, curved)
}

// ExtrudeFace removes f and extrudes its former loop along dir.
func (m *Mesh[S, V, T, P]) ExtrudeFace(f FaceID, dir V, close bool) FaceID {
	var t T
	return m.ExtrudeFaceEx(f, t.FromTranslation(dir), close, false)
}

func (m *Mesh[S, V, T, P]) ExtrudeFaceEx(f FaceID, t T, close, curved bool) FaceID {
	e := m.faces.Get(f).edge
	m.RemoveFace(f)
	return m.ExtrudeEx(e, t, close, curved)
}
