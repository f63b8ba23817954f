package main

import (
	"log"
	"net/http"
	"os"

	"novadex/internal/pokeapi"
	"novadex/pkg/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// serves <dir>/pokemon/<name>.json, <dir>/pokemon-species/<name>.json and
	// a paged /pokemon-species listing, shaped like PokeAPI v2
	if _, err := os.Stat(cfg.MirrorDir); err != nil {
		log.Fatalf("mirror dir: %v", err)
	}
	handler := pokeapi.NewMirrorHandler(os.DirFS(cfg.MirrorDir))

	log.Printf("mirror-server serving %s on http://localhost%s", cfg.MirrorDir, cfg.MirrorAddr)
	log.Printf("point the API at it with NOVADEX_UPSTREAM_URL=http://localhost%s", cfg.MirrorAddr)
	log.Fatal(http.ListenAndServe(cfg.MirrorAddr, handler))
}
