package core

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/elc/internal/logging"
)

// DecodeFunc turns one full-sized group into a record.
type DecodeFunc[T any] func(ctx context.Context, g Group) (T, error)

// Kind pairs a record kind's description with its decode function.
type Kind[T any] struct {
	Info   KindInfo
	Decode DecodeFunc[T]
}

// Options tunes Process.
type Options struct {
	// Workers bounds concurrent group decodes. Zero or less uses GOMAXPROCS.
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Process decodes one file's bytes into records of the given kind.
//
// Only invalid encoding, or cancellation of ctx, fails the call. Every other
// problem is confined to the group it occurs in: the group is logged at warn
// level with the kind's label, recorded in the report and left out of the
// result. The order of the returned records is unspecified.
func Process[T any](ctx context.Context, kind Kind[T], data []byte, opts Options) ([]T, Report, error) {
	report := Report{Kind: kind.Info.Key}

	text, err := decodeText(data)
	if err != nil {
		return nil, report, fmt.Errorf("process %s: %w", kind.Info.Label, err)
	}

	lines := SplitLines(text)
	columns, start := ResolveHeader(lines)
	idx := MakeHeaderIndex(columns)
	if missing := MissingColumns(idx, kind.Info.Columns); len(missing) > 0 {
		report.MissingColumns = missing
		logging.FromContext(ctx).Warn("file header incomplete",
			"kind", kind.Info.Label,
			"error", HeaderProblem{Missing: missing},
		)
	}

	rows := make([]Row, 0, len(lines)-start)
	for i := start; i < len(lines); i++ {
		rows = append(rows, Row{Line: i + 1, Cells: SplitLine(lines[i]), index: idx})
	}
	groups := GroupRows(rows, kind.Info.GroupSize)
	report.Rows = len(rows)
	report.Groups = len(groups)

	type result struct {
		rec T
		err error
	}
	results := make([]result, len(groups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, grp := range groups {
		i, grp := i, grp
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i].rec, results[i].err = decodeGroup(gctx, kind, grp)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, report, fmt.Errorf("process %s: %w", kind.Info.Label, err)
	}

	logger := logging.FromContext(ctx)
	records := make([]T, 0, len(results))
	for i, r := range results {
		if r.err != nil {
			derr := &DecodeError{Kind: kind.Info.Label, Group: i, Line: groups[i].Line(), Err: r.err}
			logger.Warn("broken row in file",
				"kind", kind.Info.Label,
				"group", derr.Group,
				"line", derr.Line,
				"error", r.err,
			)
			report.Failures = append(report.Failures, FailedGroup{
				Group:  derr.Group,
				Line:   derr.Line,
				Reason: r.err.Error(),
				Code:   MapError(r.err).Code,
			})
			report.Errors = append(report.Errors, derr)
			continue
		}
		records = append(records, r.rec)
	}

	report.Decoded = len(records)
	report.Dropped = len(report.Failures)

	logger.Debug("file decoded",
		"kind", kind.Info.Label,
		"rows", report.Rows,
		"groups", report.Groups,
		"decoded", report.Decoded,
		"dropped", report.Dropped,
	)

	return records, report, nil
}

func decodeGroup[T any](ctx context.Context, kind Kind[T], g Group) (T, error) {
	if want := max(kind.Info.GroupSize, 1); len(g.Rows) != want {
		var zero T
		return zero, &GroupShapeError{Want: want, Got: len(g.Rows)}
	}
	return kind.Decode(ctx, g)
}
