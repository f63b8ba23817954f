package matchup

const (
	VerdictCrushing   = "Crushing advantage"
	VerdictFavorable  = "Favorable matchup"
	VerdictCritical   = "Critical threat"
	VerdictDangerZone = "Danger zone"
	VerdictBalanced   = "Balanced showdown"
)

// Verdict labels a head-to-head from the best offensive multiplier and the
// worst defensive one. Rules are checked in order; the first match wins.
func Verdict(offense, defense float64) string {
	switch {
	case offense >= 4 && defense <= 1:
		return VerdictCrushing
	case offense >= 2 && defense <= 1:
		return VerdictFavorable
	case defense >= 4 && offense <= 1:
		return VerdictCritical
	case offense <= 0.5 && defense >= 2:
		return VerdictDangerZone
	default:
		return VerdictBalanced
	}
}
