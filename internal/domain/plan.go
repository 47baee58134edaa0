package domain

import "strings"

// RenamePlan is a single rename instruction.
// New is a pure function of Old and always differs from it.
type RenamePlan struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// PlanStats counts how the entries of one listing were classified.
type PlanStats struct {
	// Scanned is the number of entries examined.
	Scanned int

	// Matched is the number of entries recognized as section files.
	Matched int

	// NoOp is the number of section files already in normalized form.
	NoOp int
}

// Plan returns the renames needed to normalize entries, in input order.
// Entries that are not section files, or are already normalized, are skipped.
func Plan(entries []string) []RenamePlan {
	plans, _ := Analyze(entries)
	return plans
}

// Analyze is Plan that also reports how each entry was classified.
func Analyze(entries []string) ([]RenamePlan, PlanStats) {
	var (
		plans []RenamePlan
		stats PlanStats
	)
	for _, name := range entries {
		stats.Scanned++

		if !strings.HasSuffix(name, Extension) {
			continue
		}
		s, ok := Classify(name)
		if !ok {
			continue
		}
		stats.Matched++

		normalized := Normalize(s)
		if normalized == name {
			stats.NoOp++
			continue
		}
		plans = append(plans, RenamePlan{Old: name, New: normalized})
	}
	return plans, stats
}
