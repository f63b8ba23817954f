package pokeapi

import "encoding/json"

// Upstream shapes, reduced to the fields normalization reads.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonPayload struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Order          int    `json:"order"`
	Height         int    `json:"height"` // decimetres
	Weight         int    `json:"weight"` // hectograms
	BaseExperience *int   `json:"base_experience"`
	Types          []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Effort   int           `json:"effort"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	// Sprite groups nest arbitrarily deep upstream; keep them raw and pick
	// the fields we need in buildSpriteList.
	Sprites map[string]json.RawMessage `json:"sprites"`
	Moves   []struct {
		Move namedResource `json:"move"`
	} `json:"moves"`
}

type localizedText struct {
	Language namedResource `json:"language"`
}

type speciesPayload struct {
	Name    string         `json:"name"`
	Habitat *namedResource `json:"habitat"`
	Color   *namedResource `json:"color"`
	Shape   *namedResource `json:"shape"`
	Genera  []struct {
		localizedText
		Genus string `json:"genus"`
	} `json:"genera"`
	FlavorTextEntries []struct {
		localizedText
		FlavorText string `json:"flavor_text"`
	} `json:"flavor_text_entries"`
	GrowthRate  *namedResource  `json:"growth_rate"`
	CaptureRate *int            `json:"capture_rate"`
	EggGroups   []namedResource `json:"egg_groups"`
	IsLegendary bool            `json:"is_legendary"`
	IsMythical  bool            `json:"is_mythical"`
}

type listPayload struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}
