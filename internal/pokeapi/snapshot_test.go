package pokeapi_test

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"novadex/internal/pokeapi"
	"novadex/internal/testutil"
)

func TestSnapshotRoundTripsThroughMirror(t *testing.T) {
	source := testutil.NewUpstream(t, nil)
	dir := t.TempDir()

	client := pokeapi.NewClient(source.URL, time.Second)
	if err := pokeapi.Snapshot(context.Background(), client, dir, []string{"bulbasaur", "pikachu"}, 2); err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	mirror := httptest.NewServer(pokeapi.NewMirrorHandler(os.DirFS(dir)))
	t.Cleanup(mirror.Close)

	agg := pokeapi.NewAggregator(pokeapi.NewClient(mirror.URL, time.Second), 0)
	c, err := agg.Fetch(context.Background(), "bulbasaur")
	if err != nil {
		t.Fatalf("Fetch() from snapshot error = %v", err)
	}
	if c.ID != 1 || derefString(c.Genus) != "Seed Pokémon" {
		t.Fatalf("unexpected creature from snapshot: %+v", c)
	}

	names, err := agg.FetchCatalog(context.Background())
	if err != nil {
		t.Fatalf("FetchCatalog() error = %v", err)
	}
	if len(names) != 2 || names[0] != "bulbasaur" || names[1] != "pikachu" {
		t.Fatalf("unexpected snapshot catalog %v", names)
	}
}

func TestSnapshotFailsOnMissingName(t *testing.T) {
	source := testutil.NewUpstream(t, nil)
	client := pokeapi.NewClient(source.URL, time.Second)

	err := pokeapi.Snapshot(context.Background(), client, t.TempDir(), []string{"missingno"}, 1)
	if err == nil {
		t.Fatal("expected error for missing record")
	}
}
