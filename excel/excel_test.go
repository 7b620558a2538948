package excel

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"kastelo.dev/peerscore"
)

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	xlsx := excelize.NewFile()
	defer xlsx.Close()
	for i, row := range rows {
		require.NoError(t, xlsx.SetSheetRow("Sheet1", cell(1, i+1), &row))
	}
	require.NoError(t, xlsx.SaveAs(path))
}

func TestReadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.xlsx")
	writeWorkbook(t, path, [][]any{
		{"姓名", "Alice", "Alice", "Bob"},
		{"Bob", "A—5", 4, 3},
		{"Alice", 2},
	})

	grid, err := ReadGrid(path)
	require.NoError(t, err)

	assert.Equal(t, peerscore.RawGrid{
		{"姓名", "Alice", "Alice", "Bob"},
		{"Bob", "A—5", "4", "3"},
		{"Alice", "2"},
	}, grid)
}

func TestReadGridFirstSheetOnly(t *testing.T) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()
	require.NoError(t, xlsx.SetCellValue("Sheet1", "A1", "first"))
	_, err := xlsx.NewSheet("Other")
	require.NoError(t, err)
	require.NoError(t, xlsx.SetCellValue("Other", "A1", "second"))
	buf, err := xlsx.WriteToBuffer()
	require.NoError(t, err)

	grid, err := ReadGridFrom(buf)
	require.NoError(t, err)
	assert.Equal(t, peerscore.RawGrid{{"first"}}, grid)
}

func TestReadGridNotFound(t *testing.T) {
	_, err := ReadGrid(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.Equal(t, peerscore.KindNotFound, peerscore.KindOf(err))
}

func TestReadGridNotAWorkbook(t *testing.T) {
	_, err := ReadGridFrom(bytes.NewReader([]byte("not a zip file")))
	require.Error(t, err)
	assert.Equal(t, peerscore.KindData, peerscore.KindOf(err))
}

func TestSummaryXLSX(t *testing.T) {
	s, err := peerscore.Run(peerscore.Options{Averages: true}, peerscore.RawGrid{
		{"Alice", "Alice", "Bob", "Bob"},
		{"5", "4", "3", "2"},
		{"2", "1", "4", "5"},
	})
	require.NoError(t, err)

	bs, err := SummaryXLSX(s)
	require.NoError(t, err)

	xlsx, err := excelize.OpenReader(bytes.NewReader(bs))
	require.NoError(t, err)
	defer xlsx.Close()

	assert.Equal(t, []string{SheetName}, xlsx.GetSheetList())

	rows, err := xlsx.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"姓名", "T1", "T2", "总分", "平均分", "题均分"}, rows[0])
	assert.Equal(t, []string{"Alice", "7", "5"}, rows[1][:3])
	assert.Equal(t, []string{"Bob", "7", "7"}, rows[2][:3])

	// Scores are stored as numbers, not shared or inline strings.
	for _, ref := range []string{"B2", "C2", "D2", "E2"} {
		typ, err := xlsx.GetCellType(SheetName, ref)
		require.NoError(t, err)
		assert.NotEqual(t, excelize.CellTypeSharedString, typ, ref)
		assert.NotEqual(t, excelize.CellTypeInlineString, typ, ref)
	}

	raw, err := xlsx.GetCellValue(SheetName, "E2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "6", raw)
	raw, err = xlsx.GetCellValue(SheetName, "F3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "3.5", raw)
}

func TestSummaryXLSXEmpty(t *testing.T) {
	bs, err := SummaryXLSX(&peerscore.Summary{Questions: 2})
	require.NoError(t, err)

	xlsx, err := excelize.OpenReader(bytes.NewReader(bs))
	require.NoError(t, err)
	defer xlsx.Close()

	rows, err := xlsx.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"姓名", "T1", "T2"}}, rows)
}
