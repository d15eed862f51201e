package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/briancordanyoung/CachePlay/internal/cache"
)

func main() {
	capacity := flag.Int("capacity", 5, "maximum number of cached entries")
	flag.Parse()

	if *capacity < 0 {
		log.Fatalf("capacity must not be negative, got %d", *capacity)
	}

	// Signal-aware context lets Ctrl+C stop the demo between steps.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := cache.New[string, string](*capacity)

	log.Println("CachePlay demo starting")
	log.Printf("config: capacity=%d", c.Cap())

	// -------------------------------------------------------------------
	// 1) Fill past capacity: the oldest keys are evicted.
	// -------------------------------------------------------------------
	for _, k := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		if ctx.Err() != nil {
			log.Println("received shutdown signal")
			return
		}
		c.Put(k, "value-"+k)
		log.Printf("PUT %s -> keys (MRU->LRU): %v", k, c.Keys())
	}

	for _, k := range []string{"A", "B"} {
		if _, ok := c.Get(k); !ok {
			log.Printf("GET %s: missing (evicted as LRU)", k)
		}
	}

	// -------------------------------------------------------------------
	// 2) Reads promote: D then F move to the front.
	// -------------------------------------------------------------------
	for _, k := range []string{"D", "F"} {
		if v, ok := c.Get(k); ok {
			log.Printf("GET %s = %q (touches %s -> MRU)", k, v, k)
		}
	}
	log.Printf("keys after reads (MRU->LRU): %v", c.Keys())
	log.Printf("values (MRU->LRU): %v", c.Values())

	fmt.Println("Done.")
}
