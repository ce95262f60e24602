package domain

// Improvement is the relative reduction achieved by CIAVMP over a baseline policy, in percent.
// Positive values mean CIAVMP used less of the resource.
type Improvement struct {
	Baseline    string
	EnergyPct   float64
	CarbonPct   float64
	MakespanPct float64
}

// RelativeImprovement returns (baseline - candidate) / baseline * 100, or 0 when baseline is 0.
func RelativeImprovement(baseline, candidate float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (baseline - candidate) / baseline * 100
}

// CompareToBaselines computes the CIAVMP improvement against FIRST_FIT and ENERGY_AWARE.
// Baselines missing from rows are skipped; nil is returned when CIAVMP itself is absent.
func CompareToBaselines(rows []SummaryRow) []Improvement {
	byID := make(map[string]SummaryRow, len(rows))
	for _, r := range rows {
		byID[r.Policy] = r
	}

	candidate, ok := byID[CIAVMPID]
	if !ok {
		return nil
	}

	var out []Improvement
	for _, id := range []string{FirstFitID, EnergyAwareID} {
		base, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, Improvement{
			Baseline:    id,
			EnergyPct:   RelativeImprovement(base.EnergyMeanKWh, candidate.EnergyMeanKWh),
			CarbonPct:   RelativeImprovement(base.CarbonMeanKg, candidate.CarbonMeanKg),
			MakespanPct: RelativeImprovement(base.MakespanMeanS, candidate.MakespanMeanS),
		})
	}
	return out
}
