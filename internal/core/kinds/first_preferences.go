package kinds

import (
	"context"

	"github.com/JonMunkholm/elc/internal/core"
	"github.com/JonMunkholm/elc/internal/election"
)

// FirstPreferences decodes HouseFirstPrefsByPartyDownload: one row per party.
var FirstPreferences = core.Kind[election.FirstPreference]{
	Info: core.KindInfo{
		Key:       KeyFirstPreferences,
		Label:     "First Preference",
		FileName:  "HouseFirstPrefsByPartyDownload",
		GroupSize: 1,
		Columns: []string{
			colParty, colOrdinary, colAbsent, colProvisional,
			colPrePoll, colPostal, colTotalSwing,
		},
	},
	Decode: decodeFirstPreference,
}

func init() {
	core.Register(FirstPreferences.Info)
}

func decodeFirstPreference(ctx context.Context, g core.Group) (election.FirstPreference, error) {
	var (
		fp election.FirstPreference
		r  = g.First()
	)

	code, err := r.Text(colParty)
	if err != nil {
		return fp, err
	}
	fp.Party = election.DecodeParty(ctx, code)

	for _, f := range []struct {
		col string
		dst *uint64
	}{
		{colOrdinary, &fp.Ordinary},
		{colAbsent, &fp.Absent},
		{colProvisional, &fp.Provisional},
		{colPrePoll, &fp.PrePoll},
		{colPostal, &fp.Postal},
	} {
		if *f.dst, err = r.Uint(f.col); err != nil {
			return fp, err
		}
	}

	if fp.Swing, err = r.Float32(colTotalSwing); err != nil {
		return fp, err
	}
	return fp, nil
}
