package pokedex

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"novadex/pkg/models"
)

var csvHeader = []string{
	"id", "name", "types", "height", "weight", "base_total",
	"hp", "attack", "defense", "special_attack", "special_defense", "speed",
	"abilities", "genus", "habitat", "legendary", "mythical",
}

// ExportCSV looks up each name and writes one row per creature to w. Lookups
// go through the cache like any other request.
func (s *Service) ExportCSV(ctx context.Context, names []string, w io.Writer) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, err
	}

	n := 0
	for _, name := range names {
		res, err := s.Lookup(ctx, name)
		if err != nil {
			// rows already counted must reach w
			cw.Flush()
			return n, fmt.Errorf("export %s: %w", name, err)
		}
		if err := cw.Write(csvRow(res.Data)); err != nil {
			cw.Flush()
			return n, err
		}
		n++
	}
	cw.Flush()
	return n, cw.Error()
}

func csvRow(c models.Creature) []string {
	stats := make(map[string]int, len(c.Stats))
	for _, st := range c.Stats {
		stats[st.Label] = st.Base
	}
	abilities := make([]string, 0, len(c.Abilities))
	for _, a := range c.Abilities {
		abilities = append(abilities, a.Name)
	}
	genus := ""
	if c.Genus != nil {
		genus = *c.Genus
	}
	return []string{
		strconv.Itoa(c.ID),
		c.Name,
		strings.Join(c.Types, "|"),
		strconv.FormatFloat(c.Height, 'f', -1, 64),
		strconv.FormatFloat(c.Weight, 'f', -1, 64),
		strconv.Itoa(c.BaseTotal()),
		strconv.Itoa(stats["hp"]),
		strconv.Itoa(stats["attack"]),
		strconv.Itoa(stats["defense"]),
		strconv.Itoa(stats["special-attack"]),
		strconv.Itoa(stats["special-defense"]),
		strconv.Itoa(stats["speed"]),
		strings.Join(abilities, "|"),
		genus,
		c.Habitat,
		strconv.FormatBool(c.Legendary),
		strconv.FormatBool(c.Mythical),
	}
}
