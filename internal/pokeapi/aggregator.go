// Package pokeapi fetches PokeAPI records and normalizes them into
// models.Creature values.
package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"novadex/internal/apperr"
	"novadex/pkg/models"
)

// DefaultCatalogLimit comfortably exceeds the number of known species.
const DefaultCatalogLimit = 2000

// Aggregator pairs the pokemon and pokemon-species resources for a name and
// lists the full species catalog.
type Aggregator struct {
	Client       *Client
	CatalogLimit int
}

func NewAggregator(client *Client, catalogLimit int) *Aggregator {
	if catalogLimit <= 0 {
		catalogLimit = DefaultCatalogLimit
	}
	return &Aggregator{Client: client, CatalogLimit: catalogLimit}
}

// Fetch loads both upstream records concurrently and merges them. Either
// call failing fails the whole fetch and cancels the other call.
func (a *Aggregator) Fetch(ctx context.Context, name string) (models.Creature, error) {
	name = strings.ToLower(name)

	var (
		pokemon pokemonPayload
		species speciesPayload
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Client.getJSON(gctx, "/pokemon/"+name, &pokemon)
	})
	g.Go(func() error {
		return a.Client.getJSON(gctx, "/pokemon-species/"+name, &species)
	})
	if err := g.Wait(); err != nil {
		return models.Creature{}, classify(ctx, name, err)
	}

	creature, err := normalize(pokemon, species)
	if err != nil {
		log.Printf("[pokeapi] normalize %s failed: %v", name, err)
		return models.Creature{}, apperr.Internal("normalize "+name, err)
	}
	return creature, nil
}

// FetchCatalog lists every species name, sorted and without duplicates.
func (a *Aggregator) FetchCatalog(ctx context.Context) ([]string, error) {
	var list listPayload
	path := fmt.Sprintf("/pokemon-species?limit=%d&offset=0", a.CatalogLimit)
	if err := a.Client.getJSON(ctx, path, &list); err != nil {
		// The listing endpoint has no not-found case.
		return nil, upstreamError(ctx, err)
	}

	names := make([]string, 0, len(list.Results))
	for _, r := range list.Results {
		if r.Name != "" {
			names = append(names, r.Name)
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

func classify(ctx context.Context, name string, err error) error {
	var se *StatusError
	if errors.As(err, &se) && se.Status == http.StatusNotFound {
		return apperr.NotFound(fmt.Sprintf("pokemon %q not found", name))
	}
	return upstreamError(ctx, err)
}

func upstreamError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return apperr.Upstream("Vendor error: request cancelled", err)
	}
	return apperr.Upstream("Vendor error: "+err.Error(), err)
}
