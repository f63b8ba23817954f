package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"novadex/internal/pokeapi"
	"novadex/internal/pokedex"
	"novadex/pkg/cache"
	"novadex/pkg/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		outPath = flag.String("out", "data/pokedex.csv", "output CSV path")
		names   = flag.String("names", "", "comma-separated names (default: the whole catalog up to -limit)")
		limit   = flag.Int("limit", 151, "catalog entries to export when -names is empty")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := cache.New(cache.Config{Capacity: cfg.CacheCapacity, TTL: cfg.CacheTTL})
	if err != nil {
		log.Fatalf("cache: %v", err)
	}
	client := pokeapi.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	svc := pokedex.NewService(store, pokeapi.NewAggregator(client, *limit))

	var list []string
	for _, n := range strings.Split(*names, ",") {
		if n = strings.TrimSpace(n); n != "" {
			list = append(list, n)
		}
	}
	if len(list) == 0 {
		catalog, err := svc.Catalog(ctx)
		if err != nil {
			log.Fatalf("catalog failed: %v", err)
		}
		list = catalog.Data
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("mkdir failed: %v", err)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create failed: %v", err)
	}
	defer f.Close()

	n, err := svc.ExportCSV(ctx, list, f)
	if err != nil {
		log.Fatalf("export failed after %d rows: %v", n, err)
	}
	log.Printf("✅ exported %d creatures to %s", n, *outPath)
}
