// Package main serves the demo storefront standalone, so the e2e suite (or a
// human with a browser) can be pointed at a long-running instance instead of
// the per-run embedded one.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/entrhq/storewright/pkg/fixtures"
	"github.com/entrhq/storewright/pkg/storefront"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	fixturesPath := flag.String("fixtures", "", "path to a fixtures YAML file (default: embedded fixtures)")
	flag.Parse()

	set, err := loadFixtures(*fixturesPath)
	if err != nil {
		log.Fatalf("fixtures: %v", err)
	}

	cfg := storefront.DefaultConfig()
	cfg.Addr = *addr

	srv, err := storefront.NewServer(cfg, set)
	if err != nil {
		log.Fatalf("server: %v", err)
	}

	actual, err := srv.Start()
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	fmt.Printf("storefront listening on http://%s\n", actual)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}

func loadFixtures(path string) (*fixtures.Set, error) {
	if path == "" {
		return fixtures.Default()
	}
	return fixtures.Load(path)
}
