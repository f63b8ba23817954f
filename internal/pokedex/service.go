// Package pokedex answers lookup, matchup, catalog and team requests by
// reading through the response cache to the upstream aggregator.
package pokedex

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"novadex/internal/apperr"
	"novadex/internal/matchup"
	"novadex/pkg/cache"
	"novadex/pkg/models"
)

const (
	maxNameLength = 30
	catalogKey    = "catalog"
)

var namePattern = regexp.MustCompile(`^[a-z0-9-]{1,30}$`)

// Upstream is the aggregator the service falls back to on a cache miss.
type Upstream interface {
	Fetch(ctx context.Context, name string) (models.Creature, error)
	FetchCatalog(ctx context.Context) ([]string, error)
}

type Source string

const (
	SourceCache Source = "cache"
	SourceLive  Source = "live"
)

type LookupResult struct {
	Source Source          `json:"source"`
	Data   models.Creature `json:"data"`
}

type OpponentMeta struct {
	Name   string `json:"name"`
	Source Source `json:"source"`
}

type MatchupMeta struct {
	Subject  string        `json:"subject"`
	Opponent *OpponentMeta `json:"opponent"`
}

type MatchupResult struct {
	Data models.MatchupReport `json:"data"`
	Meta MatchupMeta          `json:"meta"`
}

type CatalogResult struct {
	Data []string `json:"data"`
}

type TeamResult struct {
	Data models.TeamMetrics `json:"data"`
}

type Service struct {
	Cache    *cache.Store
	Upstream Upstream
}

func NewService(store *cache.Store, upstream Upstream) *Service {
	return &Service{Cache: store, Upstream: upstream}
}

// ValidateName trims and lowercases raw and checks it against the accepted
// name pattern.
func ValidateName(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case name == "":
		return "", apperr.Invalid("name is required")
	case len(name) > maxNameLength:
		return "", apperr.Invalid(fmt.Sprintf("name must be at most %d characters", maxNameLength))
	case !namePattern.MatchString(name):
		return "", apperr.Invalid("Use alphanumeric characters or dashes only")
	}
	return name, nil
}

func creatureKey(name string) string {
	return "creature:" + name
}

func (s *Service) Lookup(ctx context.Context, rawName string) (LookupResult, error) {
	name, err := ValidateName(rawName)
	if err != nil {
		return LookupResult{}, err
	}
	return s.creature(ctx, name)
}

// creature reads name through the cache. Only a completed, uncancelled fetch
// is written back.
func (s *Service) creature(ctx context.Context, name string) (LookupResult, error) {
	key := creatureKey(name)
	if v, ok := s.Cache.Get(key); ok {
		if c, ok := v.(models.Creature); ok {
			return LookupResult{Source: SourceCache, Data: c.Clone()}, nil
		}
		s.Cache.Delete(key)
	}

	c, err := s.Upstream.Fetch(ctx, name)
	if err != nil {
		return LookupResult{}, fmt.Errorf("lookup %s: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return LookupResult{}, apperr.Upstream("Vendor error: request cancelled", err)
	}
	s.Cache.Set(key, c.Clone())
	log.Printf("[pokedex] cached %s from upstream", name)
	return LookupResult{Source: SourceLive, Data: c}, nil
}

func (s *Service) Catalog(ctx context.Context) (CatalogResult, error) {
	if v, ok := s.Cache.Get(catalogKey); ok {
		if names, ok := v.([]string); ok {
			return CatalogResult{Data: slices.Clone(names)}, nil
		}
		s.Cache.Delete(catalogKey)
	}

	names, err := s.Upstream.FetchCatalog(ctx)
	if err != nil {
		return CatalogResult{}, fmt.Errorf("catalog: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return CatalogResult{}, apperr.Upstream("Vendor error: request cancelled", err)
	}
	s.Cache.Set(catalogKey, slices.Clone(names))
	return CatalogResult{Data: names}, nil
}

// Matchups builds the report for name, and the head-to-head section when
// opponent is non-empty. Both names are validated before anything is read.
func (s *Service) Matchups(ctx context.Context, rawName, rawOpponent string) (MatchupResult, error) {
	name, err := ValidateName(rawName)
	if err != nil {
		return MatchupResult{}, err
	}
	opponentName := ""
	if strings.TrimSpace(rawOpponent) != "" {
		if opponentName, err = ValidateName(rawOpponent); err != nil {
			return MatchupResult{}, err
		}
	}

	subject, err := s.creature(ctx, name)
	if err != nil {
		return MatchupResult{}, err
	}

	meta := MatchupMeta{Subject: subject.Data.Name}
	var opponentTypes []string
	if opponentName != "" {
		opponent, err := s.creature(ctx, opponentName)
		if err != nil {
			return MatchupResult{}, err
		}
		meta.Opponent = &OpponentMeta{Name: opponent.Data.Name, Source: opponent.Source}
		opponentTypes = opponent.Data.Types
	}

	return MatchupResult{
		Data: matchup.BuildReport(subject.Data.Types, opponentTypes),
		Meta: meta,
	}, nil
}

// Team resolves every member concurrently and aggregates their coverage.
// Any member failing fails the whole request.
func (s *Service) Team(ctx context.Context, rawNames []string) (TeamResult, error) {
	if len(rawNames) == 0 {
		return TeamResult{}, apperr.Invalid("at least one name is required")
	}
	if len(rawNames) > matchup.MaxTeamSize {
		return TeamResult{}, apperr.Invalid(fmt.Sprintf("a team has at most %d members", matchup.MaxTeamSize))
	}
	names := make([]string, len(rawNames))
	for i, raw := range rawNames {
		name, err := ValidateName(raw)
		if err != nil {
			return TeamResult{}, err
		}
		names[i] = name
	}

	members := make([]matchup.TeamMember, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			res, err := s.creature(gctx, name)
			if err != nil {
				return err
			}
			members[i] = matchup.TeamMember{
				Name:      res.Data.Name,
				Types:     res.Data.Types,
				BaseTotal: res.Data.BaseTotal(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return TeamResult{}, err
	}
	return TeamResult{Data: matchup.Team(members)}, nil
}

func (s *Service) CacheStats() cache.Stats {
	return s.Cache.Stats()
}
