// Package typechart holds the attacker -> defender effectiveness table.
//
// Only non-neutral pairs are stored; any pair missing from the table is
// neutral (1x). The table is read-only after package initialisation.
package typechart

var order = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

var chart = map[string]map[string]float64{
	"normal": {"rock": 0.5, "ghost": 0, "steel": 0.5},
	"fire": {
		"fire": 0.5, "water": 0.5, "grass": 2, "ice": 2,
		"bug": 2, "rock": 0.5, "dragon": 0.5, "steel": 2,
	},
	"water": {
		"fire": 2, "water": 0.5, "grass": 0.5, "ground": 2,
		"rock": 2, "dragon": 0.5,
	},
	"electric": {
		"water": 2, "electric": 0.5, "grass": 0.5, "ground": 0,
		"flying": 2, "dragon": 0.5,
	},
	"grass": {
		"fire": 0.5, "water": 2, "grass": 0.5, "poison": 0.5,
		"ground": 2, "flying": 0.5, "bug": 0.5, "rock": 2,
		"dragon": 0.5, "steel": 0.5,
	},
	"ice": {
		"fire": 0.5, "water": 0.5, "grass": 2, "ice": 0.5,
		"ground": 2, "flying": 2, "dragon": 2, "steel": 0.5,
	},
	"fighting": {
		"normal": 2, "ice": 2, "poison": 0.5, "flying": 0.5,
		"psychic": 0.5, "bug": 0.5, "rock": 2, "ghost": 0,
		"dark": 2, "steel": 2, "fairy": 0.5,
	},
	"poison": {
		"grass": 2, "poison": 0.5, "ground": 0.5, "rock": 0.5,
		"ghost": 0.5, "steel": 0, "fairy": 2,
	},
	"ground": {
		"fire": 2, "electric": 2, "grass": 0.5, "poison": 2,
		"flying": 0, "bug": 0.5, "rock": 2, "steel": 2,
	},
	"flying": {
		"electric": 0.5, "grass": 2, "fighting": 2, "bug": 2,
		"rock": 0.5, "steel": 0.5,
	},
	"psychic": {
		"fighting": 2, "poison": 2, "psychic": 0.5, "dark": 0,
		"steel": 0.5,
	},
	"bug": {
		"fire": 0.5, "grass": 2, "fighting": 0.5, "poison": 0.5,
		"flying": 0.5, "psychic": 2, "ghost": 0.5, "dark": 2,
		"steel": 0.5, "fairy": 0.5,
	},
	"rock": {
		"fire": 2, "ice": 2, "fighting": 0.5, "ground": 0.5,
		"flying": 2, "bug": 2, "steel": 0.5,
	},
	"ghost":  {"normal": 0, "psychic": 2, "ghost": 2, "dark": 0.5},
	"dragon": {"dragon": 2, "steel": 0.5, "fairy": 0},
	"dark": {
		"fighting": 0.5, "psychic": 2, "ghost": 2, "dark": 0.5,
		"fairy": 0.5,
	},
	"steel": {
		"fire": 0.5, "water": 0.5, "electric": 0.5, "ice": 2,
		"rock": 2, "steel": 0.5, "fairy": 2,
	},
	"fairy": {
		"fire": 0.5, "fighting": 2, "poison": 0.5, "dragon": 2,
		"dark": 2, "steel": 0.5,
	},
}

// Types returns the 18 known types in chart order. The slice is a copy.
func Types() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Count is the number of known types.
func Count() int { return len(order) }

// Known reports whether t is one of the chart's types.
func Known(t string) bool {
	_, ok := chart[t]
	return ok
}

// Multiplier returns the effectiveness of attacker against a single defending
// type. Unknown types and unlisted pairs are neutral.
func Multiplier(attacker, defender string) float64 {
	if v, ok := chart[attacker][defender]; ok {
		return v
	}
	return 1
}

// Index returns the position of t in chart order, or -1.
func Index(t string) int {
	for i, name := range order {
		if name == t {
			return i
		}
	}
	return -1
}
