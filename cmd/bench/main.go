// Command bench runs a synthetic workload against an LRU or LRI cache and
// exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dkorovin/ordkit/cache"
	pmet "github.com/dkorovin/ordkit/metrics/prom"
)

func main() {
	// ---- Flags ----
	var (
		maxSize = flag.Int("size", 100_000, "cache capacity (entries)")
		kind    = flag.String("kind", "lru", "cache kind: lru | lri")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines (lri forces 1)")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys  = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed  = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "ordkit", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	opt := cache.Options[string, string]{
		MaxSize: *maxSize,
		Metrics: metrics,
	}

	// The LRI carries no lock; run it single-threaded.
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	var set func(k, v string)
	var get func(k string) bool
	switch *kind {
	case "lru":
		c := cache.NewLRU[string, string](opt)
		set = c.Set
		get = func(k string) bool { _, ok := c.Get(k); return ok }
	case "lri":
		c := cache.NewLRI[string, string](opt)
		set = c.Set
		get = func(k string) bool { _, ok := c.Get(k); return ok }
		workersN = 1
	default:
		log.Fatalf("unknown kind: %q (use lru or lri)", *kind)
	}

	// ---- Preload half capacity to get a realistic hit-rate ----
	for i := 0; i < *maxSize/2; i++ {
		set("k:"+strconv.Itoa(i), "v"+strconv.Itoa(i))
	}

	// ---- Load generation ----
	readPctVal := *readPct
	keysMax := uint64(*keys - 1)

	var reads, writes, hits, misses, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workersN)
	for w := 0; w < workersN; w++ {
		go func(id int) {
			defer wg.Done()

			// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
			localR := rand.New(rand.NewSource(*seed + int64(id)*9973))
			localZipf := rand.NewZipf(localR, *zipfS, *zipfV, keysMax)

			keyByZipf := func() string {
				return "k:" + strconv.FormatUint(localZipf.Uint64(), 10)
			}

			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddUint64(&total, 1)
				if int(localR.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					if get(keyByZipf()) {
						atomic.AddUint64(&hits, 1)
					} else {
						atomic.AddUint64(&misses, 1)
					}
				} else {
					atomic.AddUint64(&writes, 1)
					set(keyByZipf(), "v"+strconv.Itoa(localR.Int()))
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	writesN := atomic.LoadUint64(&writes)
	hitsN := atomic.LoadUint64(&hits)
	missesN := atomic.LoadUint64(&misses)

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}
	fmt.Printf("kind=%s size=%d workers=%d duration=%s\n", *kind, *maxSize, workersN, elapsed.Round(time.Millisecond))
	fmt.Printf("ops=%d (%.0f ops/s) reads=%d writes=%d\n", ops, float64(ops)/elapsed.Seconds(), readsN, writesN)
	fmt.Printf("hits=%d misses=%d hit-rate=%.1f%%\n", hitsN, missesN, hitRate)
}
