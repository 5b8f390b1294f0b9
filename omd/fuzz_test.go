package omd

import "testing"

// Fuzz a short operation sequence driven by the input bytes and check the
// structural invariants afterwards: Total equals the node count reachable
// from the list, Len equals the unique key count, and the circular links are
// intact in both directions.
func FuzzOperationSequence(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3}, "abc")
	f.Add([]byte{3, 3, 0, 0, 1}, "xy")
	f.Add([]byte{}, "")
	f.Add([]byte{4, 2, 4, 1, 0, 3}, "kkkk")

	f.Fuzz(func(t *testing.T, ops []byte, keys string) {
		if len(keys) == 0 {
			keys = "k"
		}
		d := New[byte, int]()
		for i, op := range ops {
			k := keys[i%len(keys)]
			switch op % 5 {
			case 0:
				d.Add(k, i)
			case 1:
				d.Set(k, i)
			case 2:
				d.Pop(k)
			case 3:
				d.PopLast(k)
			case 4:
				d.Delete(k)
			}
		}

		// Walk forward and backward; both must agree with Total.
		fwd := 0
		for e := d.root.next; e != d.root; e = e.next {
			fwd++
			if fwd > d.total {
				t.Fatalf("forward walk exceeds Total=%d", d.total)
			}
		}
		bwd := 0
		for e := d.root.prev; e != d.root; e = e.prev {
			bwd++
		}
		if fwd != d.total || bwd != d.total {
			t.Fatalf("walks disagree: fwd=%d bwd=%d total=%d", fwd, bwd, d.total)
		}

		// Per-key node slices must sum to Total and match GetAll.
		sum := 0
		for k, es := range d.m {
			if len(es) == 0 {
				t.Fatalf("empty node slice left under key %q", k)
			}
			sum += len(es)
			if got := d.GetAll(k); len(got) != len(es) {
				t.Fatalf("GetAll(%q)=%d values, want %d", k, len(got), len(es))
			}
		}
		if sum != d.total {
			t.Fatalf("per-key sum %d != total %d", sum, d.total)
		}
		if d.Len() != len(d.m) {
			t.Fatalf("Len=%d, map has %d keys", d.Len(), len(d.m))
		}
	})
}
