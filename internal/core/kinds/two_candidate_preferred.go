package kinds

import (
	"context"

	"github.com/JonMunkholm/elc/internal/core"
	"github.com/JonMunkholm/elc/internal/election"
)

// TwoCandidatePreferred decodes HouseTcpByCandidateByPollingPlaceDownload:
// the two candidates of each count appear on consecutive rows.
var TwoCandidatePreferred = core.Kind[election.TwoCandidatePreferred]{
	Info: core.KindInfo{
		Key:       KeyTwoCandidatePreferred,
		Label:     "Two Candidate Preferred",
		FileName:  "HouseTcpByCandidateByPollingPlaceDownload",
		GroupSize: 2,
		Columns:   []string{colDivision, colParty, colOrdinary, colSwing, colBallotPosition},
	},
	Decode: decodeTwoCandidatePreferred,
}

func init() {
	core.Register(TwoCandidatePreferred.Info)
}

func decodeTwoCandidatePreferred(ctx context.Context, g core.Group) (election.TwoCandidatePreferred, error) {
	var tcp election.TwoCandidatePreferred

	name, err := g.First().Text(colDivision)
	if err != nil {
		return tcp, err
	}
	if tcp.Division, err = election.ParseDivision(name); err != nil {
		return tcp, err
	}

	for i, r := range g.Rows {
		if tcp.Parties[i], err = decodeCandidate(ctx, r); err != nil {
			return tcp, err
		}
	}
	return tcp, nil
}

func decodeCandidate(ctx context.Context, r core.Row) (election.CandidateResult, error) {
	var c election.CandidateResult

	code, err := r.Text(colParty)
	if err != nil {
		return c, err
	}
	c.Party = election.DecodeParty(ctx, code)

	if c.Ordinary, err = r.Uint(colOrdinary); err != nil {
		return c, err
	}
	if c.Swing, err = r.Float32(colSwing); err != nil {
		return c, err
	}
	if c.BallotPosition, err = r.Uint16(colBallotPosition); err != nil {
		return c, err
	}
	return c, nil
}
