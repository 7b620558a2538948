// Package peerscore turns peer evaluation survey exports into per person
// score summaries.
//
// The input worksheet has one row per respondent. Row 0 names the rated
// peers, each repeated once per question, so that every peer owns a
// contiguous block of columns. Run filters the grid, folds every respondent
// row into a per peer score vector and formats the result as one row per
// rated person.
package peerscore // import "kastelo.dev/peerscore"

import (
	"log/slog"
)

// RawGrid is the text content of a worksheet, row by row. Rows may be
// ragged; missing trailing cells are empty.
type RawGrid [][]string

// Width returns the length of the longest row.
func (g RawGrid) Width() int {
	w := 0
	for _, row := range g {
		w = max(w, len(row))
	}
	return w
}

// Table is a RawGrid after column filtering and cell cleaning. Every row,
// including the header, has the same number of cells.
type Table struct {
	Header []string
	Rows   [][]string
}

type Options struct {
	// Exclude lists the 1-based worksheet columns to drop before
	// interpreting the grid.
	Exclude ColumnSet

	// DropTrailingColumn also drops the last worksheet column, which some
	// survey tools fill with submission metadata.
	DropTrailingColumn bool

	// ExcludeSelf treats the first remaining column as the respondent name
	// and leaves out the scores respondents give themselves.
	ExcludeSelf bool

	// Averages adds the total, per rater average and per question mean
	// columns to the summary.
	Averages bool

	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Run executes the whole pipeline on a worksheet grid.
func Run(opts Options, grid RawGrid) (*Summary, error) {
	l := opts.logger()
	l.Debug("Extracting table", "rows", len(grid), "columns", grid.Width(), "exclude", opts.Exclude.String(), "dropTrailing", opts.DropTrailingColumn)

	table, err := Extract(grid, ExtractOptions{
		Exclude:            opts.Exclude,
		DropTrailingColumn: opts.DropTrailingColumn,
	})
	if err != nil {
		return nil, err
	}

	tally, err := Aggregate(table, AggregateOptions{ExcludeSelf: opts.ExcludeSelf})
	if err != nil {
		return nil, err
	}
	l.Debug("Aggregated scores", "peers", len(tally.Names), "questions", tally.Questions, "respondents", tally.Respondents, "nonNumeric", tally.NonNumeric)

	return Format(tally, FormatOptions{Averages: opts.Averages}), nil
}
