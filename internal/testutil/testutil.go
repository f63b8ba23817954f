// Package testutil provides a fake PokeAPI for tests in other packages.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"testing/fstest"

	"novadex/internal/pokeapi"
)

const bulbasaurPokemon = `{
  "id": 1, "name": "bulbasaur", "order": 1, "height": 7, "weight": 69, "base_experience": 64,
  "types": [
    {"slot": 2, "type": {"name": "poison", "url": ""}},
    {"slot": 1, "type": {"name": "grass", "url": ""}}
  ],
  "abilities": [
    {"ability": {"name": "chlorophyll"}, "is_hidden": true, "slot": 3},
    {"ability": {"name": "overgrow"}, "is_hidden": false, "slot": 1}
  ],
  "stats": [
    {"base_stat": 45, "effort": 0, "stat": {"name": "hp"}},
    {"base_stat": 49, "effort": 0, "stat": {"name": "attack"}},
    {"base_stat": 49, "effort": 0, "stat": {"name": "defense"}},
    {"base_stat": 65, "effort": 1, "stat": {"name": "special-attack"}},
    {"base_stat": 65, "effort": 0, "stat": {"name": "special-defense"}},
    {"base_stat": 45, "effort": 0, "stat": {"name": "speed"}}
  ],
  "sprites": {
    "front_default": "https://img.test/front/1.png",
    "front_shiny": "https://img.test/shiny/1.png",
    "front_female": null,
    "front_shiny_female": null,
    "back_default": "https://img.test/back/1.png",
    "back_shiny": "https://img.test/back-shiny/1.png",
    "back_female": null,
    "back_shiny_female": null,
    "other": {
      "dream_world": {"front_default": "https://img.test/dream/1.svg", "front_female": null},
      "home": {"front_default": "https://img.test/home/1.png", "front_shiny": "https://img.test/home-shiny/1.png", "front_female": null, "front_shiny_female": null},
      "official-artwork": {"front_default": "https://img.test/art/1.png", "front_shiny": "https://img.test/front/1.png"},
      "showdown": {"front_default": "https://img.test/showdown/1.gif"}
    },
    "versions": {"generation-i": {"red-blue": {"front_default": "https://img.test/gen1/1.png"}}}
  },
  "moves": [
    {"move": {"name": "razor-wind"}}, {"move": {"name": "swords-dance"}}, {"move": {"name": "cut"}},
    {"move": {"name": "bind"}}, {"move": {"name": "vine-whip"}}, {"move": {"name": "headbutt"}},
    {"move": {"name": "tackle"}}, {"move": {"name": "body-slam"}}, {"move": {"name": "take-down"}},
    {"move": {"name": "double-edge"}}
  ]
}`

const bulbasaurSpecies = `{
  "name": "bulbasaur",
  "habitat": {"name": "grassland"},
  "color": {"name": "green"},
  "shape": {"name": "quadruped"},
  "genera": [
    {"genus": "たねポケモン", "language": {"name": "ja"}},
    {"genus": "Seed Pokémon", "language": {"name": "en"}}
  ],
  "flavor_text_entries": [
    {"flavor_text": "うまれたときから", "language": {"name": "ja"}},
    {"flavor_text": "A strange seed was\nplanted on its\fback at birth.\r", "language": {"name": "en"}},
    {"flavor_text": "Second English entry.", "language": {"name": "en"}}
  ],
  "growth_rate": {"name": "medium-slow"},
  "capture_rate": 45,
  "egg_groups": [{"name": "monster"}, {"name": "plant"}],
  "is_legendary": false,
  "is_mythical": false
}`

func simplePokemon(id int, name, types string, total int) string {
	return `{"id": ` + strconv.Itoa(id) + `, "name": "` + name + `", "order": ` + strconv.Itoa(id) + `, "height": 10, "weight": 100, "base_experience": null,
  "types": ` + types + `,
  "abilities": [{"ability": {"name": "pressure"}, "is_hidden": false}],
  "stats": [
    {"base_stat": ` + strconv.Itoa(total) + `, "effort": 0, "stat": {"name": "hp"}},
    {"base_stat": 0, "effort": 0, "stat": {"name": "attack"}},
    {"base_stat": 0, "effort": 0, "stat": {"name": "defense"}},
    {"base_stat": 0, "effort": 0, "stat": {"name": "special-attack"}},
    {"base_stat": 0, "effort": 0, "stat": {"name": "special-defense"}},
    {"base_stat": 0, "effort": 0, "stat": {"name": "speed"}}
  ],
  "sprites": {"front_default": null, "other": {}},
  "moves": []
}`
}

const bareSpecies = `{"name": "x", "flavor_text_entries": [{"flavor_text": "Nur Deutsch.", "language": {"name": "de"}}], "egg_groups": []}`

// Fixtures returns a PokeAPI mirror layout with a handful of entries:
//
//	bulbasaur  grass/poison, full record
//	charmander fire
//	squirtle   water
//	pikachu    electric
//	glitch     three types, species present (normalization must reject it)
//	ghostly    pokemon record only, species missing (404 on one side)
func Fixtures() fstest.MapFS {
	file := func(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }
	return fstest.MapFS{
		"pokemon/bulbasaur.json":          file(bulbasaurPokemon),
		"pokemon-species/bulbasaur.json":  file(bulbasaurSpecies),
		"pokemon/charmander.json":         file(simplePokemon(4, "charmander", `[{"slot": 1, "type": {"name": "fire"}}]`, 309)),
		"pokemon-species/charmander.json": file(bareSpecies),
		"pokemon/squirtle.json":           file(simplePokemon(7, "squirtle", `[{"slot": 1, "type": {"name": "water"}}]`, 314)),
		"pokemon-species/squirtle.json":   file(bareSpecies),
		"pokemon/pikachu.json":            file(simplePokemon(25, "pikachu", `[{"slot": 1, "type": {"name": "electric"}}]`, 320)),
		"pokemon-species/pikachu.json":    file(bareSpecies),
		"pokemon/glitch.json": file(simplePokemon(0, "glitch",
			`[{"slot": 1, "type": {"name": "normal"}}, {"slot": 2, "type": {"name": "bird"}}, {"slot": 3, "type": {"name": "fire"}}]`, 1)),
		"pokemon-species/glitch.json": file(bareSpecies),
		"pokemon/ghostly.json":        file(simplePokemon(999, "ghostly", `[{"slot": 1, "type": {"name": "ghost"}}]`, 400)),
	}
}

// Upstream is a fake PokeAPI server that counts requests per path.
type Upstream struct {
	*httptest.Server

	mu     sync.Mutex
	hits   map[string]int
	status int // when non-zero every request fails with this status
}

// NewUpstream starts a server over handler (nil means Fixtures) and closes
// it when the test ends.
func NewUpstream(t *testing.T, handler http.Handler) *Upstream {
	t.Helper()
	if handler == nil {
		handler = pokeapi.NewMirrorHandler(Fixtures())
	}
	u := &Upstream{hits: make(map[string]int)}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.hits[r.URL.Path]++
		status := u.status
		u.mu.Unlock()
		if status != 0 {
			http.Error(w, "upstream unavailable", status)
			return
		}
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(u.Close)
	return u
}

// Hits returns how many requests reached path.
func (u *Upstream) Hits(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hits[path]
}

// Total returns the number of requests served.
func (u *Upstream) Total() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for _, v := range u.hits {
		n += v
	}
	return n
}

// FailWith makes every following request answer with status.
func (u *Upstream) FailWith(status int) {
	u.mu.Lock()
	u.status = status
	u.mu.Unlock()
}
