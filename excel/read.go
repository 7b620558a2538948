package excel

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/xuri/excelize/v2"
	"kastelo.dev/peerscore"
)

// ReadGrid returns the formatted cell text of the first worksheet of the
// workbook at path.
func ReadGrid(path string) (peerscore.RawGrid, error) {
	xlsx, err := excelize.OpenFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &peerscore.Error{Kind: peerscore.KindNotFound, Op: "open workbook", Err: err}
	} else if err != nil {
		return nil, &peerscore.Error{Kind: peerscore.KindData, Op: "open workbook", Err: err}
	}
	defer xlsx.Close()

	return firstSheet(xlsx)
}

// ReadGridFrom is like ReadGrid for a workbook read from r.
func ReadGridFrom(r io.Reader) (peerscore.RawGrid, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &peerscore.Error{Kind: peerscore.KindData, Op: "open workbook", Err: err}
	}
	defer xlsx.Close()

	return firstSheet(xlsx)
}

func firstSheet(xlsx *excelize.File) (peerscore.RawGrid, error) {
	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, &peerscore.Error{Kind: peerscore.KindData, Op: "read workbook", Err: fmt.Errorf("no worksheets: %w", peerscore.ErrEmpty)}
	}

	rows, err := xlsx.GetRows(sheets[0])
	if err != nil {
		return nil, &peerscore.Error{Kind: peerscore.KindData, Op: "read worksheet " + sheets[0], Err: err}
	}
	return peerscore.RawGrid(rows), nil
}
