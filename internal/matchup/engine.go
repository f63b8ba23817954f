// Package matchup computes type-effectiveness reports from type sets.
//
// Everything here is pure: the same inputs always produce the same report.
package matchup

import (
	"math"
	"sort"

	"novadex/internal/typechart"
	"novadex/pkg/models"
)

const (
	maxBestCounters     = 3
	maxResistHighlights = 5
)

// Effectiveness multiplies the chart value of attacker against every
// defending type. An empty defender set is neutral.
func Effectiveness(attacker string, defenders []string) float64 {
	product := 1.0
	for _, d := range defenders {
		product *= typechart.Multiplier(attacker, d)
	}
	return product
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildReport builds the full report for a subject with the given types.
// opponentTypes may be empty, in which case Versus is nil.
func BuildReport(subjectTypes, opponentTypes []string) models.MatchupReport {
	defense := defenseBuckets(subjectTypes)
	return models.MatchupReport{
		Defense: defense,
		Attack:  attackBuckets(subjectTypes),
		Summary: summarize(defense),
		Versus:  versus(subjectTypes, opponentTypes),
	}
}

func defenseBuckets(types []string) models.DefenseBuckets {
	out := models.DefenseBuckets{
		ResistantTo:  []models.TypeMultiplier{},
		VulnerableTo: []models.TypeMultiplier{},
		ImmuneTo:     []models.TypeMultiplier{},
	}
	for _, attacker := range typechart.Types() {
		m := Effectiveness(attacker, types)
		entry := models.TypeMultiplier{Type: attacker, Multiplier: round2(m)}
		switch {
		case m == 0:
			out.ImmuneTo = append(out.ImmuneTo, entry)
		case m > 1:
			out.VulnerableTo = append(out.VulnerableTo, entry)
		case m < 1:
			out.ResistantTo = append(out.ResistantTo, entry)
		}
	}
	return out
}

func attackBuckets(types []string) models.AttackBuckets {
	out := models.AttackBuckets{
		StrongAgainst: []models.AttackMultiplier{},
		WeakAgainst:   []models.AttackMultiplier{},
		NoEffect:      []models.AttackMultiplier{},
	}
	for _, own := range types {
		for _, target := range typechart.Types() {
			m := Effectiveness(own, []string{target})
			entry := models.AttackMultiplier{Type: own, Target: target, Multiplier: round2(m)}
			switch {
			case m == 0:
				out.NoEffect = append(out.NoEffect, entry)
			case m > 1:
				out.StrongAgainst = append(out.StrongAgainst, entry)
			case m < 1:
				out.WeakAgainst = append(out.WeakAgainst, entry)
			}
		}
	}
	return out
}

// summarize picks counters deterministically: highest multiplier first,
// then type name.
func summarize(defense models.DefenseBuckets) models.MatchupSummary {
	ranked := append([]models.TypeMultiplier(nil), defense.VulnerableTo...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Multiplier != ranked[j].Multiplier {
			return ranked[i].Multiplier > ranked[j].Multiplier
		}
		return ranked[i].Type < ranked[j].Type
	})

	counters := make([]string, 0, maxBestCounters)
	for _, entry := range ranked {
		if len(counters) == maxBestCounters {
			break
		}
		counters = append(counters, entry.Type)
	}

	n := min(len(defense.ResistantTo), maxResistHighlights)
	highlights := append([]models.TypeMultiplier{}, defense.ResistantTo[:n]...)

	return models.MatchupSummary{
		BestCounters:     counters,
		ResistHighlights: highlights,
	}
}

func versus(subjectTypes, opponentTypes []string) *models.Versus {
	if len(opponentTypes) == 0 {
		return nil
	}

	offense := breakdown(subjectTypes, opponentTypes)
	defense := breakdown(opponentTypes, subjectTypes)

	v := &models.Versus{
		OpponentTypes: append([]string(nil), opponentTypes...),
		Offense:       models.OffenseSummary{Multiplier: 1, Breakdown: offense},
		Defense:       models.DefenseSummary{Multiplier: 1, Breakdown: defense},
	}
	if len(offense) > 0 {
		best := offense[0].AttackType
		v.Offense.BestType = &best
		v.Offense.Multiplier = offense[0].Multiplier
	}
	if len(defense) > 0 {
		riskiest := defense[0].AttackType
		v.Defense.RiskiestType = &riskiest
		v.Defense.Multiplier = defense[0].Multiplier
	}
	v.Verdict = Verdict(v.Offense.Multiplier, v.Defense.Multiplier)
	return v
}

// breakdown scores each attacking type against the whole defender set,
// highest first. Ties keep the attackers' original order.
func breakdown(attackers, defenders []string) []models.BreakdownEntry {
	out := make([]models.BreakdownEntry, 0, len(attackers))
	for _, a := range attackers {
		out = append(out, models.BreakdownEntry{
			AttackType: a,
			Multiplier: round2(Effectiveness(a, defenders)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Multiplier > out[j].Multiplier
	})
	return out
}
