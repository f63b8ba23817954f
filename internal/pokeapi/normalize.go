package pokeapi

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"novadex/pkg/models"
)

const (
	english         = "en"
	unknownValue    = "unknown"
	movesSampleSize = 8
)

// spriteField addresses one sprite URL. An empty group means a top-level
// field; otherwise the field sits one level under sprites.other[group].
type spriteField struct {
	group string
	field string
}

// spritePreference is the order sprites are offered to clients in.
var spritePreference = []spriteField{
	{"official-artwork", "front_default"},
	{"official-artwork", "front_shiny"},
	{"home", "front_default"},
	{"home", "front_shiny"},
	{"home", "front_female"},
	{"home", "front_shiny_female"},
	{"dream_world", "front_default"},
	{"dream_world", "front_female"},
	{"", "front_default"},
	{"", "front_shiny"},
	{"", "front_female"},
	{"", "front_shiny_female"},
	{"", "back_default"},
	{"", "back_shiny"},
	{"", "back_female"},
	{"", "back_shiny_female"},
}

var flavorReplacer = strings.NewReplacer("\f", " ", "\n", " ", "\r", " ")

// normalize merges the pokemon and species records into one Creature.
// A panic while merging is turned into an error.
func normalize(p pokemonPayload, s speciesPayload) (c models.Creature, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("normalize %q: %v", p.Name, r)
		}
	}()

	if p.Name == "" {
		return models.Creature{}, fmt.Errorf("pokemon payload has no name")
	}
	if n := len(p.Types); n < 1 || n > 2 {
		return models.Creature{}, fmt.Errorf("pokemon %q has %d types", p.Name, n)
	}

	c = models.Creature{
		ID:          p.ID,
		Name:        p.Name,
		Order:       p.Order,
		Height:      float64(p.Height) / 10,
		Weight:      float64(p.Weight) / 10,
		Types:       sortedTypes(p),
		Abilities:   sortedAbilities(p),
		Stats:       make([]models.Stat, 0, len(p.Stats)),
		Sprites:     buildSpriteList(p.Sprites),
		MovesSample: make([]string, 0, movesSampleSize),
		Habitat:     nameOr(s.Habitat, unknownValue),
		Color:       nameOr(s.Color, unknownValue),
		Shape:       nameOr(s.Shape, unknownValue),
		FlavorText:  sanitizeFlavorText(s),
		CaptureRate: s.CaptureRate,
		EggGroups:   make([]string, 0, len(s.EggGroups)),
		Legendary:   s.IsLegendary,
		Mythical:    s.IsMythical,
	}
	if p.BaseExperience != nil {
		c.BaseExperience = *p.BaseExperience
	}
	for _, st := range p.Stats {
		c.Stats = append(c.Stats, models.Stat{Label: st.Stat.Name, Base: st.BaseStat, Effort: st.Effort})
	}
	for i, m := range p.Moves {
		if i == movesSampleSize {
			break
		}
		c.MovesSample = append(c.MovesSample, m.Move.Name)
	}
	for _, g := range s.Genera {
		if g.Language.Name == english {
			genus := g.Genus
			c.Genus = &genus
			break
		}
	}
	if s.GrowthRate != nil && s.GrowthRate.Name != "" {
		rate := s.GrowthRate.Name
		c.GrowthRate = &rate
	}
	for _, g := range s.EggGroups {
		c.EggGroups = append(c.EggGroups, g.Name)
	}
	return c, nil
}

func sortedTypes(p pokemonPayload) []string {
	slots := append(p.Types[:0:0], p.Types...)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })
	out := make([]string, 0, len(slots))
	for _, t := range slots {
		out = append(out, t.Type.Name)
	}
	return out
}

// sortedAbilities keeps upstream order but moves hidden abilities last.
func sortedAbilities(p pokemonPayload) []models.Ability {
	out := make([]models.Ability, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		out = append(out, models.Ability{Name: a.Ability.Name, Hidden: a.IsHidden})
	}
	sort.SliceStable(out, func(i, j int) bool { return !out[i].Hidden && out[j].Hidden })
	return out
}

// buildSpriteList walks spritePreference, drops nulls and empty strings and
// removes duplicate URLs keeping the first occurrence.
func buildSpriteList(sprites map[string]json.RawMessage) []string {
	groups := make(map[string]map[string]json.RawMessage)
	if raw, ok := sprites["other"]; ok {
		var other map[string]json.RawMessage
		if err := json.Unmarshal(raw, &other); err == nil {
			for name, body := range other {
				var fields map[string]json.RawMessage
				if err := json.Unmarshal(body, &fields); err == nil {
					groups[name] = fields
				}
			}
		}
	}

	out := make([]string, 0, len(spritePreference))
	seen := make(map[string]struct{}, len(spritePreference))
	for _, pref := range spritePreference {
		fields := sprites
		if pref.group != "" {
			fields = groups[pref.group]
		}
		url := rawString(fields[pref.field])
		if url == "" {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		out = append(out, url)
	}
	return out
}

// rawString decodes a JSON string, treating null or any non-string as empty.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// sanitizeFlavorText returns the first English entry with control line
// breaks replaced by spaces, or nil when there is none.
func sanitizeFlavorText(s speciesPayload) *string {
	for _, e := range s.FlavorTextEntries {
		if e.Language.Name != english {
			continue
		}
		text := strings.TrimSpace(flavorReplacer.Replace(e.FlavorText))
		return &text
	}
	return nil
}

func nameOr(r *namedResource, fallback string) string {
	if r == nil || r.Name == "" {
		return fallback
	}
	return r.Name
}
