package peerscore

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type AggregateOptions struct {
	// ExcludeSelf makes column 0 the respondent name column. Scores a
	// respondent gives to the peer of the same name are left out.
	ExcludeSelf bool
}

// Aggregate folds every respondent row of the table into per peer score
// vectors.
//
// The header names the peer owning each score column. Repeated names form
// the peer's block, one column per question, and the n-th column under a
// name is question n for that peer. All peers must have the same number of
// questions.
func Aggregate(t Table, opts AggregateOptions) (*Tally, error) {
	first := 0
	if opts.ExcludeSelf {
		first = 1
	}
	if len(t.Header) <= first {
		return nil, &Error{Kind: KindData, Op: "aggregate", Err: fmt.Errorf("no score columns: %w", ErrEmpty)}
	}
	header := t.Header[first:]

	names, questions, err := blocks(header)
	if err != nil {
		return nil, err
	}

	tally := newTally(names, questions)
	for _, row := range t.Rows {
		if isBlank(row) {
			continue
		}
		tally.Respondents++

		respondent := ""
		if opts.ExcludeSelf {
			respondent = cellAt(row, 0)
		}
		for _, name := range names {
			if !opts.ExcludeSelf || name != respondent {
				tally.Raters[name]++
			}
		}

		cur := make(cursor, len(names))
		for i, name := range header {
			slot := cur.next(name)
			score, ok := parseScore(cellAt(row, first+i))
			if !ok {
				tally.NonNumeric++
			}
			if opts.ExcludeSelf && name == respondent {
				continue
			}
			tally.add(name, slot, score)
		}
	}

	return tally, nil
}

// blocks returns the distinct header names in order of first appearance
// and the common block width.
func blocks(header []string) ([]string, int, error) {
	var names []string
	width := make(map[string]int)
	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			return nil, 0, dataErrorf("aggregate", "score column %d has no peer name", i+1)
		}
		if _, ok := width[name]; !ok {
			names = append(names, name)
		}
		width[name]++
	}

	questions := len(header) / len(names)
	for _, name := range names {
		if width[name] != questions {
			return nil, 0, &Error{Kind: KindData, Op: "aggregate", Err: fmt.Errorf("%w: %s", ErrUnequalBlocks, describeWidths(names, width))}
		}
	}
	return names, questions, nil
}

func describeWidths(names []string, width map[string]int) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, width[name])
	}
	return strings.Join(parts, ", ")
}

// parseScore returns the integer value of a cell. Empty cells are zero.
// Anything else that is not an integer is zero and not ok.
func parseScore(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	// Integral values formatted as "5.0" or "5.00"
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		return int(f), true
	}
	return 0, false
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
