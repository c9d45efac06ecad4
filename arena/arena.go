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

// Package arena provides append-only indexed storage with soft deletion.
//
// Every stored entity knows its own id. An entity is created with the
// sentinel id Max and receives its real id when it is pushed into an Arena.
// Deleting an entity only tombstones it, so ids stay stable until Compact is
// called.
package arena

import (
	"iter"
)

// Index is the set of handle types an Arena can hand out.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Max returns the sentinel value of I.
func Max[I Index]() I {
	return ^I(0)
}

// Entity is implemented by pointers to values stored in an Arena.
type Entity[I Index, T any] interface {
	*T
	ID() I
	SetID(id I)
	Delete()
	IsDeleted() bool
}

func assert(cond bool, msg string) {
	if !cond {
		panic("arena: " + msg)
	}
}

// Arena stores values of T addressed by ids of type I.
//
// Pointers returned by Get are only valid until the next Push.
type Arena[I Index, T any, PT Entity[I, T]] struct {
	data []T
	live int
}

// Push appends v and returns its new id. v must not have an id yet.
func (a *Arena[I, T, PT]) Push(v T) I {
	id := I(len(a.data))
	assert(id != Max[I](), "index space exhausted")
	a.data = append(a.data, v)
	PT(&a.data[len(a.data)-1]).SetID(id)
	a.live++
	return id
}

// Get returns the entity stored at id, deleted or not.
func (a *Arena[I, T, PT]) Get(id I) PT {
	assert(uint64(id) < uint64(len(a.data)), "index out of range")
	return PT(&a.data[id])
}

// Has reports whether id refers to a live entity.
func (a *Arena[I, T, PT]) Has(id I) bool {
	if uint64(id) >= uint64(len(a.data)) {
		return false
	}
	return !PT(&a.data[id]).IsDeleted()
}

// Delete tombstones the entity at id.
func (a *Arena[I, T, PT]) Delete(id I) {
	a.Get(id).Delete()
	a.live--
}

// Len returns the number of slots, including tombstones.
func (a *Arena[I, T, PT]) Len() int {
	return len(a.data)
}

// Count returns the number of live entities.
func (a *Arena[I, T, PT]) Count() int {
	return a.live
}

// Next returns the id the next Push will assign.
func (a *Arena[I, T, PT]) Next() I {
	return I(len(a.data))
}

// All iterates over the ids of live entities in ascending order.
func (a *Arena[I, T, PT]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		for i := range a.data {
			if PT(&a.data[i]).IsDeleted() {
				continue
			}
			if !yield(I(i)) {
				return
			}
		}
	}
}

// Compact drops tombstones and renumbers the live entities. The returned
// table maps every old id to its new id, or to Max if it was deleted.
// References held inside the entities are not rewritten.
func (a *Arena[I, T, PT]) Compact() []I {
	remap := make([]I, len(a.data))
	n := 0
	for i := range a.data {
		p := PT(&a.data[i])
		if p.IsDeleted() {
			remap[i] = Max[I]()
			continue
		}
		remap[i] = I(n)
		a.data[n] = a.data[i]
		p = PT(&a.data[n])
		p.Delete()
		p.SetID(I(n))
		n++
	}
	var zero T
	for i := n; i < len(a.data); i++ {
		a.data[i] = zero
	}
	a.data = a.data[:n]
	a.live = n
	return remap
}
