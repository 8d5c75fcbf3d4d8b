// Package export writes decoded results to an XLSX workbook: for each
// election year a summary sheet plus one sheet per record kind.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/elc/internal/core/kinds"
	"github.com/JonMunkholm/elc/internal/election"
)

// Sheet header rows.
var (
	summaryHeader = []any{"Party", "Total First Preferences", "Seats Won", "Preference Flow Strength", "Swing Volatility"}
	fpHeader      = []any{"Party", "Ordinary", "Absent", "Provisional", "Pre-Poll", "Postal", "Total", "Swing"}
	tcpHeader     = []any{
		"Division", "State",
		"Party A", "Ordinary A", "Swing A", "Ballot Position A",
		"Party B", "Ordinary B", "Swing B", "Ballot Position B",
	}
	dopHeader = []any{"Division", "State", "Party", "Preference Count", "Transfer Count"}
)

// SheetName returns the sheet name used for a year and section label.
func SheetName(year int, label string) string {
	return fmt.Sprintf("%d %s", year, label)
}

// Build creates a workbook for every year in results, newest first.
// The caller must Close the returned file.
func Build(results election.Results) (*excelize.File, error) {
	f := excelize.NewFile()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	w := &writer{f: f, header: bold}
	for _, year := range results.Years() {
		if err := w.year(year, results[year]); err != nil {
			f.Close()
			return nil, err
		}
	}

	if len(results) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			f.Close()
			return nil, fmt.Errorf("remove default sheet: %w", err)
		}
		f.SetActiveSheet(0)
	}
	return f, nil
}

// WriteFile builds the workbook and saves it to path.
func WriteFile(path string, results election.Results) error {
	f, err := Build(results)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// Write builds the workbook and streams it to out.
func Write(out io.Writer, results election.Results) error {
	f, err := Build(results)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type writer struct {
	f      *excelize.File
	header int
}

func (w *writer) year(year int, d election.Dataset) error {
	summary := make([][]any, 0)
	for _, p := range election.Summarize(d) {
		summary = append(summary, []any{
			p.Party.String(), tallyCell(p.TotalFirstPreferences), p.SeatsWon,
			p.PreferenceFlowStrength, p.SwingVolatility,
		})
	}
	if err := w.sheet(SheetName(year, "Summary"), summaryHeader, summary); err != nil {
		return err
	}

	v, _ := kinds.Select(d, kinds.KeyFirstPreferences)
	var fp [][]any
	for _, r := range v.([]election.FirstPreference) {
		fp = append(fp, []any{
			r.Party.String(), r.Ordinary, r.Absent, r.Provisional, r.PrePoll, r.Postal,
			tallyCell(r.Total()), r.Swing,
		})
	}
	if err := w.sheet(SheetName(year, kinds.FirstPreferences.Info.Label), fpHeader, fp); err != nil {
		return err
	}

	v, _ = kinds.Select(d, kinds.KeyTwoCandidatePreferred)
	var tcp [][]any
	for _, r := range v.([]election.TwoCandidatePreferred) {
		a, b := r.Parties[0], r.Parties[1]
		tcp = append(tcp, []any{
			r.Division.String(), r.Division.State().String(),
			a.Party.String(), a.Ordinary, a.Swing, a.BallotPosition,
			b.Party.String(), b.Ordinary, b.Swing, b.BallotPosition,
		})
	}
	if err := w.sheet(SheetName(year, kinds.TwoCandidatePreferred.Info.Label), tcpHeader, tcp); err != nil {
		return err
	}

	v, _ = kinds.Select(d, kinds.KeyPreferenceDistribution)
	var dop [][]any
	for _, r := range v.([]election.PreferenceDistribution) {
		dop = append(dop, []any{
			r.Division.String(), r.Division.State().String(), r.Party.String(),
			r.PreferenceCount, r.TransferCount,
		})
	}
	return w.sheet(SheetName(year, kinds.PreferenceDistribution.Info.Label), dopHeader, dop)
}

func (w *writer) sheet(name string, header []any, rows [][]any) error {
	if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	if err := w.f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", name, err)
	}
	if err := w.f.SetRowStyle(name, 1, 1, w.header); err != nil {
		return fmt.Errorf("style %s header: %w", name, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := w.f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", name, i+2, err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return w.f.SetColWidth(name, "A", last, 18)
}

// tallyCell writes totals that fit in 64 bits as numbers and larger ones
// as decimal text.
func tallyCell(t election.Tally) any {
	if v, ok := t.Uint64(); ok {
		return v
	}
	return t.String()
}
