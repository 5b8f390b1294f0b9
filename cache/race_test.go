package cache

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

// A mixed workload of concurrent Set/Get/GetDefault/Delete on random keys.
// Should pass under `-race` without detector reports.
func TestRace_LRUBasic(t *testing.T) {
	c := NewLRU[string, []byte](Options[string, []byte]{MaxSize: 4096})

	workers := 4 * runtime.GOMAXPROCS(0)
	keyspace := 20_000
	deadline := time.Now().Add(2 * time.Second)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)*9973))
			for time.Now().Before(deadline) {
				k := "k:" + strconv.Itoa(r.Intn(keyspace))
				switch r.Intn(100) {
				case 0, 1, 2, 3, 4: // ~5% — Delete
					c.Delete(k)
				case 5, 6, 7, 8, 9: // ~5% — GetDefault
					c.GetDefault(k, nil)
				case 10, 11, 12, 13, 14, 15, 16, 17, 18, 19: // ~10% — Set
					c.Set(k, []byte("x"))
				default: // ~80% — Get
					c.Get(k)
				}
			}
		}(w)
	}
	wg.Wait()

	if c.Len() > 4096 {
		t.Fatalf("size bound violated: %d", c.Len())
	}
}

// Concurrent GetOrLoad calls for the same key should trigger the Loader at
// most once (singleflight coalescing); subsequent calls are cache hits.
func TestRace_GetOrLoad(t *testing.T) {
	var calls int64

	c := NewLRU[string, string](Options[string, string]{
		MaxSize: 64,
		Loader: func(_ context.Context, k string) (string, error) {
			atomic.AddInt64(&calls, 1)
			time.Sleep(5 * time.Millisecond) // simulate I/O
			return "v:" + k, nil
		},
	})

	const N = 64
	var g errgroup.Group
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for i := 0; i < N; i++ {
		g.Go(func() error {
			v, err := c.GetOrLoad(ctx, "k")
			if err != nil {
				return err
			}
			if v != "v:k" {
				return fmt.Errorf("got %q", v)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if got := atomic.LoadInt64(&calls); got > 1 {
		t.Fatalf("loader must run at most once, got %d", got)
	}

	if v, err := c.GetOrLoad(context.Background(), "k"); err != nil || v != "v:k" {
		t.Fatalf("second GetOrLoad failed: v=%q err=%v", v, err)
	}
}

// Without a Loader, GetOrLoad reports ErrNoLoader on a miss.
func TestGetOrLoad_NoLoader(t *testing.T) {
	t.Parallel()

	c := NewLRU[string, string](Options[string, string]{MaxSize: 4})
	if _, err := c.GetOrLoad(context.Background(), "k"); err != ErrNoLoader {
		t.Fatalf("want ErrNoLoader, got %v", err)
	}

	c.Set("k", "v")
	if v, err := c.GetOrLoad(context.Background(), "k"); err != nil || v != "v" {
		t.Fatalf("hit path must not need a Loader: v=%q err=%v", v, err)
	}
}
