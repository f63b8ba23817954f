package models

type TeamWeakness struct {
	Type     string `json:"type"`
	Affected int    `json:"affected"`
}

type TeamResistance struct {
	Type       string `json:"type"`
	Protectors int    `json:"protectors"`
}

// TeamMetrics aggregates type coverage across a party of up to six members.
type TeamMetrics struct {
	Members           []string         `json:"members"`
	Size              int              `json:"size"`
	UniqueTypes       []string         `json:"unique_types"`
	CoveragePercent   float64          `json:"coverage_percent"`
	GlaringWeaknesses []TeamWeakness   `json:"glaring_weaknesses"`
	SturdyResistances []TeamResistance `json:"sturdy_resistances"`
	AverageBaseTotal  int              `json:"average_base_total"`
}
