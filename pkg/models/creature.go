package models

// Creature is the normalized, presentation-agnostic form of a Pokédex entry.
//
// It is built from two upstream resources (the pokemon record and its
// species record) and is the value stored in the response cache.
type Creature struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"` // canonical lowercase-dash name
	Order          int       `json:"order"`
	Height         float64   `json:"height"` // meters
	Weight         float64   `json:"weight"` // kilograms
	BaseExperience int       `json:"base_experience"`
	Types          []string  `json:"types"` // slot order, 1 or 2 entries
	Abilities      []Ability `json:"abilities"`
	Stats          []Stat    `json:"stats"`
	Sprites        []string  `json:"sprites"`
	MovesSample    []string  `json:"moves_sample"`

	Habitat     string   `json:"habitat"`
	Color       string   `json:"color"`
	Shape       string   `json:"shape"`
	Genus       *string  `json:"genus,omitempty"`
	FlavorText  *string  `json:"flavor_text"`
	GrowthRate  *string  `json:"growth_rate,omitempty"`
	CaptureRate *int     `json:"capture_rate,omitempty"`
	EggGroups   []string `json:"egg_groups"`
	Legendary   bool     `json:"legendary"`
	Mythical    bool     `json:"mythical"`
}

type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

type Stat struct {
	Label  string `json:"label"`
	Base   int    `json:"base"`
	Effort int    `json:"effort"`
}

// BaseTotal sums the base value of every stat.
func (c Creature) BaseTotal() int {
	total := 0
	for _, s := range c.Stats {
		total += s.Base
	}
	return total
}

// Clone returns a deep copy so callers never share slices with the cache.
func (c Creature) Clone() Creature {
	out := c
	out.Types = cloneStrings(c.Types)
	out.Sprites = cloneStrings(c.Sprites)
	out.MovesSample = cloneStrings(c.MovesSample)
	out.EggGroups = cloneStrings(c.EggGroups)
	if c.Abilities != nil {
		out.Abilities = append([]Ability(nil), c.Abilities...)
	}
	if c.Stats != nil {
		out.Stats = append([]Stat(nil), c.Stats...)
	}
	out.Genus = cloneString(c.Genus)
	out.FlavorText = cloneString(c.FlavorText)
	out.GrowthRate = cloneString(c.GrowthRate)
	if c.CaptureRate != nil {
		v := *c.CaptureRate
		out.CaptureRate = &v
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
