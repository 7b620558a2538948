package peerscore

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	RosterFileName = "namelist.txt"
	OutputFileName = "final.xlsx"
)

// Inputs are the two files a run needs.
type Inputs struct {
	Spreadsheet string
	Roster      string
}

// ResolveInputs picks the survey spreadsheet (.xlsx) and the roster file
// (namelist.txt) out of paths, in any order. Other paths are ignored.
func ResolveInputs(paths []string) (Inputs, error) {
	if len(paths) < 2 {
		return Inputs{}, &Error{Kind: KindInput, Op: "resolve inputs", Err: ErrUsage}
	}

	var sheets, rosters []string
	for _, p := range paths {
		switch {
		case strings.EqualFold(filepath.Ext(p), ".xlsx"):
			sheets = append(sheets, p)
		case strings.EqualFold(filepath.Base(p), RosterFileName):
			rosters = append(rosters, p)
		}
	}

	switch {
	case len(sheets) == 0:
		return Inputs{}, &Error{Kind: KindInput, Op: "resolve inputs", Err: fmt.Errorf("no .xlsx file: %w", ErrUsage)}
	case len(rosters) == 0:
		return Inputs{}, &Error{Kind: KindInput, Op: "resolve inputs", Err: fmt.Errorf("no %s: %w", RosterFileName, ErrUsage)}
	case len(sheets) > 1:
		return Inputs{}, &Error{Kind: KindInput, Op: "resolve inputs", Err: fmt.Errorf("%w: %s", ErrAmbiguous, strings.Join(sheets, ", "))}
	case len(rosters) > 1:
		return Inputs{}, &Error{Kind: KindInput, Op: "resolve inputs", Err: fmt.Errorf("%w: %s", ErrAmbiguous, strings.Join(rosters, ", "))}
	}

	return Inputs{Spreadsheet: sheets[0], Roster: rosters[0]}, nil
}

// OutputPath is final.xlsx next to the survey spreadsheet.
func (in Inputs) OutputPath() string {
	return filepath.Join(filepath.Dir(in.Spreadsheet), OutputFileName)
}
