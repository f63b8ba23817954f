package matchup

import (
	"math"
	"sort"

	"novadex/internal/typechart"
	"novadex/pkg/models"
)

const (
	MaxTeamSize    = 6
	maxTeamEntries = 4
)

// TeamMember is the slice of a Creature the team metrics need.
type TeamMember struct {
	Name      string
	Types     []string
	BaseTotal int
}

// Team aggregates shared weaknesses and resistances across members.
func Team(members []TeamMember) models.TeamMetrics {
	names := make([]string, 0, len(members))
	seen := make(map[string]struct{})
	unique := []string{}
	weak := make(map[string]int)
	resist := make(map[string]int)
	total := 0

	for _, m := range members {
		names = append(names, m.Name)
		total += m.BaseTotal
		for _, t := range m.Types {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				unique = append(unique, t)
			}
		}
		for _, attacker := range typechart.Types() {
			switch v := Effectiveness(attacker, m.Types); {
			case v > 1:
				weak[attacker]++
			case v < 1:
				resist[attacker]++
			}
		}
	}
	sort.Strings(unique)

	threshold := max(2, int(math.Ceil(float64(len(members))/2)))
	weaknesses := []models.TeamWeakness{}
	resistances := []models.TeamResistance{}
	for _, t := range typechart.Types() {
		if n := weak[t]; n >= threshold {
			weaknesses = append(weaknesses, models.TeamWeakness{Type: t, Affected: n})
		}
		if n := resist[t]; n > 0 {
			resistances = append(resistances, models.TeamResistance{Type: t, Protectors: n})
		}
	}
	sort.Slice(weaknesses, func(i, j int) bool {
		if weaknesses[i].Affected != weaknesses[j].Affected {
			return weaknesses[i].Affected > weaknesses[j].Affected
		}
		return typechart.Index(weaknesses[i].Type) < typechart.Index(weaknesses[j].Type)
	})
	sort.Slice(resistances, func(i, j int) bool {
		if resistances[i].Protectors != resistances[j].Protectors {
			return resistances[i].Protectors > resistances[j].Protectors
		}
		return typechart.Index(resistances[i].Type) < typechart.Index(resistances[j].Type)
	})

	covered := 0
	for _, t := range unique {
		if typechart.Known(t) {
			covered++
		}
	}

	avg := 0
	if len(members) > 0 {
		avg = int(math.Round(float64(total) / float64(len(members))))
	}

	return models.TeamMetrics{
		Members:           names,
		Size:              len(members),
		UniqueTypes:       unique,
		CoveragePercent:   float64(covered) / float64(typechart.Count()),
		GlaringWeaknesses: weaknesses[:min(len(weaknesses), maxTeamEntries)],
		SturdyResistances: resistances[:min(len(resistances), maxTeamEntries)],
		AverageBaseTotal:  avg,
	}
}
