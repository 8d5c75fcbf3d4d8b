package kinds

import (
	"context"

	"github.com/JonMunkholm/elc/internal/core"
	"github.com/JonMunkholm/elc/internal/election"
)

// PreferenceDistribution decodes HouseDopByDivisionDownload. Each count step
// spans four rows; the first carries the preferences held and the last the
// votes transferred. The two middle rows are not used.
var PreferenceDistribution = core.Kind[election.PreferenceDistribution]{
	Info: core.KindInfo{
		Key:       KeyPreferenceDistribution,
		Label:     "Preference Distribution",
		FileName:  "HouseDopByDivisionDownload",
		GroupSize: 4,
		Columns:   []string{colParty, colDivision, colCalculationValue},
	},
	Decode: decodePreferenceDistribution,
}

func init() {
	core.Register(PreferenceDistribution.Info)
}

func decodePreferenceDistribution(ctx context.Context, g core.Group) (election.PreferenceDistribution, error) {
	var (
		pd    election.PreferenceDistribution
		first = g.First()
	)

	code, err := first.Text(colParty)
	if err != nil {
		return pd, err
	}
	pd.Party = election.DecodeParty(ctx, code)

	name, err := first.Text(colDivision)
	if err != nil {
		return pd, err
	}
	if pd.Division, err = election.ParseDivision(name); err != nil {
		return pd, err
	}

	if pd.PreferenceCount, err = first.Uint(colCalculationValue); err != nil {
		return pd, err
	}
	if pd.TransferCount, err = g.Last().Uint(colCalculationValue); err != nil {
		return pd, err
	}
	return pd, nil
}
