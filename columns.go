package peerscore

import (
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnSet is an immutable set of 1-based worksheet column numbers.
type ColumnSet struct {
	cols []int // sorted, unique
}

// NewColumnSet returns a set holding the given column numbers.
func NewColumnSet(cols ...int) ColumnSet {
	c := slices.Clone(cols)
	slices.Sort(c)
	return ColumnSet{cols: slices.Compact(c)}
}

// ParseColumns decodes a comma separated list of column letters ("A, C,
// AB") into column numbers. An empty list is an empty set.
func ParseColumns(s string) (ColumnSet, error) {
	if strings.TrimSpace(s) == "" {
		return ColumnSet{}, nil
	}

	var cols []int
	for _, tok := range splitColumns(s) {
		name := strings.ToUpper(strings.TrimSpace(tok))
		if name == "" {
			return ColumnSet{}, configErrorf("parse columns", "empty column name in %q", s)
		}
		for _, r := range name {
			if r < 'A' || r > 'Z' {
				return ColumnSet{}, configErrorf("parse columns", "invalid column name %q", tok)
			}
		}
		n, err := excelize.ColumnNameToNumber(name)
		if err != nil {
			return ColumnSet{}, configErrorf("parse columns", "column %q: %v", tok, err)
		}
		cols = append(cols, n)
	}
	return NewColumnSet(cols...), nil
}

func (c ColumnSet) Contains(col int) bool {
	_, ok := slices.BinarySearch(c.cols, col)
	return ok
}

func (c ColumnSet) Len() int {
	return len(c.cols)
}

// Columns returns the column numbers in ascending order.
func (c ColumnSet) Columns() []int {
	return slices.Clone(c.cols)
}

// String returns the set as a canonical column letter list, "A,C,AB".
func (c ColumnSet) String() string {
	names := make([]string, 0, len(c.cols))
	for _, col := range c.cols {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return strings.Join(names, ",")
}
