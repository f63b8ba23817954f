package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"novadex/internal/pokeapi"
	"novadex/pkg/utils"
)

// export-mirror snapshots upstream records into the dev mirror directory so
// mirror-server can replay them offline.
func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		outDir   = flag.String("out", cfg.MirrorDir, "mirror directory")
		names    = flag.String("names", "", "comma-separated names (default: first -limit catalog entries)")
		limit    = flag.Int("limit", 20, "how many catalog entries to export when -names is empty")
		parallel = flag.Int("parallel", 4, "concurrent upstream requests")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := pokeapi.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)

	var list []string
	for _, n := range strings.Split(*names, ",") {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			list = append(list, n)
		}
	}
	if len(list) == 0 {
		catalog, err := pokeapi.NewAggregator(client, *limit).FetchCatalog(ctx)
		if err != nil {
			log.Fatalf("catalog failed: %v", err)
		}
		list = catalog
	}

	if err := pokeapi.Snapshot(ctx, client, *outDir, list, *parallel); err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("✅ exported %d records from %s to %s", len(list), cfg.UpstreamBaseURL, *outDir)
}
