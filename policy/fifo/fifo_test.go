package fifo

import (
	"testing"

	"github.com/dkorovin/ordkit/policy"
)

type testNode[K comparable, V any] struct {
	k K
	v V
}

func (n *testNode[K, V]) Key() K    { return n.k }
func (n *testNode[K, V]) Value() *V { return &n.v }

type mockHooks[K comparable, V any] struct {
	pushFrontCnt   int
	moveToFrontCnt int
	removeCnt      int

	lastPush policy.Node[K, V]
	lastMove policy.Node[K, V]
}

func (h *mockHooks[K, V]) MoveToFront(n policy.Node[K, V]) { h.moveToFrontCnt++; h.lastMove = n }
func (h *mockHooks[K, V]) PushFront(n policy.Node[K, V]) { h.pushFrontCnt++; h.lastPush = n }
func (h *mockHooks[K, V]) Remove(policy.Node[K, V])      { h.removeCnt++ }
func (h *mockHooks[K, V]) Back() policy.Node[K, V]       { return nil }
func (h *mockHooks[K, V]) Len() int                      { return 0 }

// OnAdd pushes to the most-recent end and never proposes an eviction.
func TestFIFO_OnAdd_PushFrontAndNoEvict(t *testing.T) {
	t.Parallel()

	h := &mockHooks[string, int]{}
	p := New[string, int]().New(h)

	n := &testNode[string, int]{k: "k1", v: 1}
	if ev := p.OnAdd(n); ev != nil {
		t.Fatalf("OnAdd must not return evict candidate for FIFO, got %v", ev)
	}
	if h.pushFrontCnt != 1 || h.lastPush != n {
		t.Fatalf("OnAdd must call PushFront exactly once with the node")
	}
}

// Reads must never reorder: that is the whole point of FIFO.
func TestFIFO_Get_NeverReorders(t *testing.T) {
	t.Parallel()

	h := &mockHooks[string, int]{}
	p := New[string, int]().New(h)

	n := &testNode[string, int]{k: "k2", v: 2}
	p.OnGet(n)
	p.OnGet(n)
	p.OnRemove(n)

	if h.moveToFrontCnt != 0 {
		t.Fatalf("OnGet must never call MoveToFront, got %d calls", h.moveToFrontCnt)
	}
	if h.pushFrontCnt != 0 || h.removeCnt != 0 {
		t.Fatalf("OnGet/OnRemove must not touch the list")
	}
}

// A write to an existing key counts as a fresh insertion.
func TestFIFO_Update_RefreshesSlot(t *testing.T) {
	t.Parallel()

	h := &mockHooks[string, int]{}
	p := New[string, int]().New(h)

	n := &testNode[string, int]{k: "k3", v: 3}
	p.OnUpdate(n)

	if h.moveToFrontCnt != 1 || h.lastMove != n {
		t.Fatalf("OnUpdate must call MoveToFront exactly once with the node")
	}
	if h.pushFrontCnt != 0 {
		t.Fatal("OnUpdate must not push a second copy of the node")
	}
}
