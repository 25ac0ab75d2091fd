// Command kvdemo walks through the causal write protocol on the sample
// store: two clients writing concurrently fork siblings, a client
// writing with the full read context resolves them, and a client
// reusing a stale context forks again.
package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"causalkv/internal/config"
	"causalkv/internal/kv"
)

const timeout = 5 * time.Second

func main() {
	cfg, actors, err := config.Process()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Configured: %+v\n", cfg)

	store := kv.NewStore()
	if err := store.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
		log.Fatal(err)
	}

	if err := runScenario(store, cfg.Key, actors); err != nil {
		log.Fatal(err)
	}

	if cfg.MetricsAddr == "" {
		return
	}

	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.MetricsAddr,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	go func() {
		log.Printf("Serving metrics on %s", cfg.MetricsAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	<-signalChan

	log.Println("Shutdown signal received, exiting...")
	srv.Close()
}

// runScenario performs the read-context-then-write protocol with three
// clients against a single key, logging the store state after each step.
func runScenario(store *kv.Store, key string, actors []string) error {
	a, b, c := actors[0], actors[1], actors[2]

	// Clients read before writing, as any highly available store
	// expects, and each carries the context it last saw.
	_, ctxA := store.Get(key)
	_, ctxB := store.Get(key)

	if _, err := store.Set(a, key, []byte("10"), ctxA); err != nil {
		return err
	}
	if _, err := store.Set(b, key, []byte("15"), ctxB); err != nil {
		return err
	}
	logState(store, key, "two clients wrote with the same empty context")

	// A third client reads the merged context: its write has seen the
	// full causal past and replaces both siblings.
	_, ctxC := store.Get(key)
	if _, err := store.Set(c, key, []byte("20"), ctxC); err != nil {
		return err
	}
	logState(store, key, "a write carrying the full context resolved the conflict")

	// The second client writes again with its original stale context:
	// concurrent with the resolving write, so both are kept.
	if _, err := store.Set(b, key, []byte("30"), ctxB); err != nil {
		return err
	}
	logState(store, key, "a stale-context write forked a new sibling")

	return nil
}

func logState(store *kv.Store, key, what string) {
	values, ctx := store.Get(key)
	log.Printf("%s:", what)
	for _, v := range values {
		log.Printf("  key=%s value=%s dot=%s", key, v.Data, v.Dot)
	}
	log.Printf("  context=%s", ctx)
}
