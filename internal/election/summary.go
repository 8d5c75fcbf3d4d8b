package election

import (
	"math"
	"sort"
)

// PartyPerformance aggregates one party's results across a dataset.
type PartyPerformance struct {
	Party                  Party   `json:"party"`
	TotalFirstPreferences  Tally   `json:"total_first_preferences"`
	SeatsWon               uint32  `json:"seats_won"`
	PreferenceFlowStrength float32 `json:"preference_flow_strength"`
	SwingVolatility        float32 `json:"swing_volatility"`
}

type partyAccum struct {
	perf    PartyPerformance
	flowSum float64
	flowN   int
	swings  []float64
}

// Summarize computes per-party performance for a dataset, ordered by total
// first preferences (highest first), then by party code.
//
// A seat is won by the party with the most two-candidate-preferred ordinary
// votes in a division, summed over every count in that division. Preference
// flow strength is the mean ratio of transferred votes to preferences held,
// over distribution rows with a non-zero preference count. Swing volatility
// is the population standard deviation of first preference swings.
func Summarize(d Dataset) []PartyPerformance {
	acc := make(map[Party]*partyAccum)
	get := func(p Party) *partyAccum {
		a, ok := acc[p]
		if !ok {
			a = &partyAccum{perf: PartyPerformance{Party: p}}
			acc[p] = a
		}
		return a
	}

	for _, fp := range d.FirstPreferences {
		a := get(fp.Party)
		a.perf.TotalFirstPreferences = a.perf.TotalFirstPreferences.Plus(fp.Total())
		a.swings = append(a.swings, float64(fp.Swing))
	}

	for _, p := range divisionWinners(d.TwoCandidatePreferred) {
		get(p).perf.SeatsWon++
	}

	for _, pd := range d.PreferenceDistributions {
		if pd.PreferenceCount == 0 {
			continue
		}
		a := get(pd.Party)
		a.flowSum += float64(pd.TransferCount) / float64(pd.PreferenceCount)
		a.flowN++
	}

	out := make([]PartyPerformance, 0, len(acc))
	for _, a := range acc {
		if a.flowN > 0 {
			a.perf.PreferenceFlowStrength = float32(a.flowSum / float64(a.flowN))
		}
		a.perf.SwingVolatility = float32(stddev(a.swings))
		out = append(out, a.perf)
	}

	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].TotalFirstPreferences, out[j].TotalFirstPreferences
		if ti != tj {
			return tj.Less(ti)
		}
		return out[i].Party.Less(out[j].Party)
	})
	return out
}

// divisionWinners returns the leading party in each division. Ties go to
// the lower party code.
func divisionWinners(tcp []TwoCandidatePreferred) map[Division]Party {
	votes := make(map[Division]map[Party]Tally)
	for _, t := range tcp {
		m, ok := votes[t.Division]
		if !ok {
			m = make(map[Party]Tally)
			votes[t.Division] = m
		}
		for _, c := range t.Parties {
			m[c.Party] = m[c.Party].Add(c.Ordinary)
		}
	}

	winners := make(map[Division]Party, len(votes))
	for div, m := range votes {
		var (
			best  Party
			most  Tally
			found bool
		)
		for p, v := range m {
			if !found || most.Less(v) || (v == most && p.Less(best)) {
				best, most, found = p, v, true
			}
		}
		winners[div] = best
	}
	return winners
}

func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var sq float64
	for _, x := range xs {
		sq += (x - mean) * (x - mean)
	}
	return math.Sqrt(sq / float64(len(xs)))
}
