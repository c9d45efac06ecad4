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

import (
	"github.com/pkg/errors"
)

// Check verifies the structural invariants of the mesh: twins pair up, every
// loop closes, next and prev agree, and every back-pointer refers to a live
// entity that points back.
func (m *Mesh[S, V, T, P]) Check() error {
	for e := range m.edges.All() {
		he := m.edges.Get(e)
		for _, r := range []EdgeID{he.next, he.prev, he.twin} {
			if !m.edges.Has(r) {
				return errors.Errorf("halfedge: edge %d refers to dead edge %d", e, r)
			}
		}
		if he.twin == e {
			return errors.Errorf("halfedge: edge %d is its own twin", e)
		}
		if m.Twin(he.twin) != e {
			return errors.Errorf("halfedge: twin of twin of edge %d is %d", e, m.Twin(he.twin))
		}
		if m.Prev(he.next) != e {
			return errors.Errorf("halfedge: prev of next of edge %d is %d", e, m.Prev(he.next))
		}
		if m.Next(he.prev) != e {
			return errors.Errorf("halfedge: next of prev of edge %d is %d", e, m.Next(he.prev))
		}
		if !m.vertices.Has(he.origin) {
			return errors.Errorf("halfedge: edge %d starts at dead vertex %d", e, he.origin)
		}
		if m.Origin(he.next) != m.Target(e) {
			return errors.Errorf("halfedge: edge %d ends at %d but its next starts at %d", e, m.Target(e), m.Origin(he.next))
		}
		if m.EdgeFace(he.next) != he.face {
			return errors.Errorf("halfedge: edge %d and its next disagree on the face", e)
		}
		if he.face != NoFace && !m.faces.Has(he.face) {
			return errors.Errorf("halfedge: edge %d lies on dead face %d", e, he.face)
		}
	}

	for f := range m.faces.All() {
		fc := m.faces.Get(f)
		if !m.edges.Has(fc.edge) {
			return errors.Errorf("halfedge: face %d refers to dead edge %d", f, fc.edge)
		}
		n := 0
		for e := range m.EdgesFace(fc.edge) {
			if m.EdgeFace(e) != f {
				return errors.Errorf("halfedge: edge %d in the loop of face %d belongs to face %d", e, f, m.EdgeFace(e))
			}
			n++
			if n > m.edges.Len() {
				return errors.Errorf("halfedge: loop of face %d does not close", f)
			}
		}
		if n < 3 {
			return errors.Errorf("halfedge: face %d has only %d edges", f, n)
		}
	}

	for v := range m.vertices.All() {
		e := m.vertices.Get(v).edge
		if e == NoEdge {
			continue
		}
		if !m.edges.Has(e) {
			return errors.Errorf("halfedge: vertex %d refers to dead edge %d", v, e)
		}
		if m.Origin(e) != v {
			return errors.Errorf("halfedge: outgoing edge %d of vertex %d starts at %d", e, v, m.Origin(e))
		}
	}
	return nil
}
