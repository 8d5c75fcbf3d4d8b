// Package election holds the typed records decoded from AEC House of
// Representatives result files, and the closed Division and Party
// enumerations they refer to.
package election

import "sort"

// FirstPreference is one row of the first preferences by party file.
type FirstPreference struct {
	Party       Party   `json:"party"`
	Ordinary    uint64  `json:"ordinary"`
	Absent      uint64  `json:"absent"`
	Provisional uint64  `json:"provisional"`
	PrePoll     uint64  `json:"prepoll"`
	Postal      uint64  `json:"postal"`
	Swing       float32 `json:"swing"`
}

// Total sums the five vote types without overflowing.
func (f FirstPreference) Total() Tally {
	var t Tally
	for _, v := range [...]uint64{f.Ordinary, f.Absent, f.Provisional, f.PrePoll, f.Postal} {
		t = t.Add(v)
	}
	return t
}

// CandidateResult is one side of a two-candidate-preferred count.
type CandidateResult struct {
	Party          Party   `json:"party"`
	Ordinary       uint64  `json:"ordinary"`
	Swing          float32 `json:"swing"`
	BallotPosition uint16  `json:"ballot_position"`
}

// TwoCandidatePreferred is a two-candidate-preferred count. The pair keeps
// the order in which the candidates appear in the source file.
type TwoCandidatePreferred struct {
	Division Division           `json:"division"`
	Parties  [2]CandidateResult `json:"parties"`
}

// PreferenceDistribution is one count step from the distribution of
// preferences file: the preferences a party held and the votes transferred.
type PreferenceDistribution struct {
	Division        Division `json:"division"`
	Party           Party    `json:"party"`
	PreferenceCount uint64   `json:"preference_count"`
	TransferCount   uint64   `json:"transfer_count"`
}

// Dataset is everything decoded for one election.
type Dataset struct {
	FirstPreferences        []FirstPreference        `json:"first_preferences"`
	TwoCandidatePreferred   []TwoCandidatePreferred  `json:"two_candidate_preferred"`
	PreferenceDistributions []PreferenceDistribution `json:"preference_distributions"`
}

// Counts returns the number of records of each kind.
func (d Dataset) Counts() map[string]int {
	return map[string]int{
		"first_preferences":        len(d.FirstPreferences),
		"two_candidate_preferred":  len(d.TwoCandidatePreferred),
		"preference_distributions": len(d.PreferenceDistributions),
	}
}

// Election identifies one federal election by year and AEC event code.
type Election struct {
	Year int `json:"year" yaml:"year"`
	Code int `json:"code" yaml:"code"`
}

// DefaultElections are the federal elections loaded when no list is configured.
var DefaultElections = []Election{
	{Year: 2022, Code: 27966},
	{Year: 2019, Code: 24310},
	{Year: 2016, Code: 20499},
}

// Results maps an election year to its dataset.
type Results map[int]Dataset

// Years returns the years present, newest first.
func (r Results) Years() []int {
	years := make([]int, 0, len(r))
	for y := range r {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
