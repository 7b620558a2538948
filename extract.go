package peerscore

import (
	"strings"
)

type ExtractOptions struct {
	Exclude            ColumnSet
	DropTrailingColumn bool
}

// emDash separates the option label survey tools put in front of answers,
// as in "A—满意".
const emDash = "—"

// CleanCell strips everything up to and including the last em dash.
func CleanCell(s string) string {
	if i := strings.LastIndex(s, emDash); i >= 0 {
		return s[i+len(emDash):]
	}
	return s
}

// Extract drops the excluded columns from the grid and cleans the remaining
// cells. Rows shorter than the grid are padded with empty cells, so the
// result is rectangular and keeps the row count of the grid.
func Extract(grid RawGrid, opts ExtractOptions) (Table, error) {
	width := grid.Width()
	if len(grid) == 0 || width == 0 {
		return Table{}, &Error{Kind: KindData, Op: "extract", Err: ErrEmpty}
	}

	keep := make([]int, 0, width)
	for col := 1; col <= width; col++ {
		if opts.Exclude.Contains(col) {
			continue
		}
		if opts.DropTrailingColumn && col == width {
			continue
		}
		keep = append(keep, col-1)
	}
	if len(keep) == 0 {
		return Table{}, dataErrorf("extract", "all %d columns are excluded", width)
	}

	rows := make([][]string, len(grid))
	for i, src := range grid {
		row := make([]string, len(keep))
		for j, idx := range keep {
			if idx < len(src) {
				row[j] = CleanCell(src[idx])
			}
		}
		rows[i] = row
	}

	return Table{Header: rows[0], Rows: rows[1:]}, nil
}
