package arena_test

import (
	"testing"

	"github.com/hajimehoshi/go-halfedge/arena"
)

type node struct {
	id    uint16
	value string
}

func newNode(v string) node {
	return node{id: arena.Max[uint16](), value: v}
}

func (n *node) ID() uint16 { return n.id }

func (n *node) SetID(id uint16) {
	if n.id != arena.Max[uint16]() || id == arena.Max[uint16]() {
		panic("bad id")
	}
	n.id = id
}

func (n *node) Delete() {
	if n.IsDeleted() {
		panic("already deleted")
	}
	n.id = arena.Max[uint16]()
}

func (n *node) IsDeleted() bool { return n.id == arena.Max[uint16]() }

func TestPushGetDelete(t *testing.T) {
	var a arena.Arena[uint16, node, *node]
	ids := []uint16{a.Push(newNode("a")), a.Push(newNode("b")), a.Push(newNode("c"))}
	for i, id := range ids {
		if int(id) != i {
			t.Fatalf("id: got %d, want %d", id, i)
		}
		if got := a.Get(id).ID(); got != id {
			t.Fatalf("stored id: got %d, want %d", got, id)
		}
	}
	a.Delete(ids[1])
	if a.Has(ids[1]) {
		t.Fatalf("deleted entity is still live")
	}
	if !a.Has(ids[2]) {
		t.Fatalf("live entity reported as deleted")
	}
	if got, want := a.Count(), 2; got != want {
		t.Fatalf("Count: got %d, want %d", got, want)
	}
	if got, want := a.Len(), 3; got != want {
		t.Fatalf("Len: got %d, want %d", got, want)
	}
	var live []uint16
	for id := range a.All() {
		live = append(live, id)
	}
	if len(live) != 2 || live[0] != 0 || live[1] != 2 {
		t.Fatalf("All: got %v", live)
	}
}

func TestDoubleDeletePanics(t *testing.T) {
	var a arena.Arena[uint16, node, *node]
	id := a.Push(newNode("a"))
	a.Delete(id)
	defer func() {
		if recover() == nil {
			t.Fatalf("second Delete did not panic")
		}
	}()
	a.Delete(id)
}

func TestPushAssignedEntityPanics(t *testing.T) {
	var a arena.Arena[uint16, node, *node]
	a.Push(newNode("a"))
	defer func() {
		if recover() == nil {
			t.Fatalf("pushing an entity with an id did not panic")
		}
	}()
	a.Push(*a.Get(0))
}

func TestCompact(t *testing.T) {
	var a arena.Arena[uint16, node, *node]
	for _, v := range []string{"a", "b", "c", "d"} {
		a.Push(newNode(v))
	}
	a.Delete(0)
	a.Delete(2)
	remap := a.Compact()
	want := []uint16{arena.Max[uint16](), 0, arena.Max[uint16](), 1}
	for i := range want {
		if remap[i] != want[i] {
			t.Fatalf("remap[%d]: got %d, want %d", i, remap[i], want[i])
		}
	}
	if a.Len() != 2 || a.Count() != 2 {
		t.Fatalf("after Compact: Len %d, Count %d", a.Len(), a.Count())
	}
	if got := a.Get(1).value; got != "d" {
		t.Fatalf("Get(1): got %q, want %q", got, "d")
	}
	if got := a.Get(1).ID(); got != 1 {
		t.Fatalf("Get(1).ID: got %d, want 1", got)
	}
}
