package models

// TypeMultiplier is one bucket entry of a defense report.
type TypeMultiplier struct {
	Type       string  `json:"type"`
	Multiplier float64 `json:"multiplier"`
}

// AttackMultiplier is one bucket entry of an attack report: how the
// subject's Type performs against Target.
type AttackMultiplier struct {
	Type       string  `json:"type"`
	Target     string  `json:"target"`
	Multiplier float64 `json:"multiplier"`
}

type DefenseBuckets struct {
	ResistantTo  []TypeMultiplier `json:"resistant_to"`
	VulnerableTo []TypeMultiplier `json:"vulnerable_to"`
	ImmuneTo     []TypeMultiplier `json:"immune_to"`
}

type AttackBuckets struct {
	StrongAgainst []AttackMultiplier `json:"strong_against"`
	WeakAgainst   []AttackMultiplier `json:"weak_against"`
	NoEffect      []AttackMultiplier `json:"no_effect"`
}

type MatchupSummary struct {
	BestCounters     []string         `json:"best_counters"`
	ResistHighlights []TypeMultiplier `json:"resist_highlights"`
}

type BreakdownEntry struct {
	AttackType string  `json:"attack_type"`
	Multiplier float64 `json:"multiplier"`
}

type OffenseSummary struct {
	BestType   *string          `json:"best_type"`
	Multiplier float64          `json:"multiplier"`
	Breakdown  []BreakdownEntry `json:"breakdown"`
}

type DefenseSummary struct {
	RiskiestType *string          `json:"riskiest_type"`
	Multiplier   float64          `json:"multiplier"`
	Breakdown    []BreakdownEntry `json:"breakdown"`
}

// Versus is the head-to-head section, present only when an opponent is given.
type Versus struct {
	OpponentTypes []string       `json:"opponent_types"`
	Offense       OffenseSummary `json:"offense"`
	Defense       DefenseSummary `json:"defense"`
	Verdict       string         `json:"verdict"`
}

// MatchupReport is derived per request and never cached.
type MatchupReport struct {
	Defense DefenseBuckets `json:"defense"`
	Attack  AttackBuckets  `json:"attack"`
	Summary MatchupSummary `json:"summary"`
	Versus  *Versus        `json:"versus"`
}
