// Package kinds describes the three AEC House result files the pipeline
// decodes and registers them with the core registry.
//
// Each file declares a core.Kind descriptor and registers its KindInfo in
// init(). Import this package to make the kinds visible through core.All.
package kinds

import (
	"fmt"
	"sort"

	"github.com/JonMunkholm/elc/internal/election"
)

// Registry keys.
const (
	KeyFirstPreferences       = "first_preferences"
	KeyTwoCandidatePreferred  = "two_candidate_preferred"
	KeyPreferenceDistribution = "preference_distributions"
)

// Column names as published by the AEC.
const (
	colParty            = "PartyAb"
	colDivision         = "DivisionNm"
	colOrdinary         = "OrdinaryVotes"
	colAbsent           = "AbsentVotes"
	colProvisional      = "ProvisionalVotes"
	colPrePoll          = "PrePollVotes"
	colPostal           = "PostalVotes"
	colTotalSwing       = "TotalSwing"
	colSwing            = "Swing"
	colBallotPosition   = "BallotPosition"
	colCalculationValue = "CalculationValue"
)

// Select returns one collection of a dataset by kind key, sorted by
// division then party code so repeated calls give stable output.
func Select(d election.Dataset, key string) (any, error) {
	switch key {
	case KeyFirstPreferences:
		out := append([]election.FirstPreference(nil), d.FirstPreferences...)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Party.Less(out[j].Party) })
		return out, nil
	case KeyTwoCandidatePreferred:
		out := append([]election.TwoCandidatePreferred(nil), d.TwoCandidatePreferred...)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Division < out[j].Division })
		return out, nil
	case KeyPreferenceDistribution:
		out := append([]election.PreferenceDistribution(nil), d.PreferenceDistributions...)
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Division != out[j].Division {
				return out[i].Division < out[j].Division
			}
			return out[i].Party.Less(out[j].Party)
		})
		return out, nil
	default:
		return nil, fmt.Errorf("unknown kind: %s", key)
	}
}
