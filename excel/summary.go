package excel

import (
	"github.com/xuri/excelize/v2"
	"kastelo.dev/peerscore"
)

// SheetName is the name of the single summary worksheet.
const SheetName = "Sheet1"

// SummaryXLSX renders the summary as a workbook with a header row and one
// row per rated person. Scores are numeric cells.
func SummaryXLSX(s *peerscore.Summary) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "kastelo.dev/peerscore",
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if sheet != SheetName {
		if err := xlsx.SetSheetName(sheet, SheetName); err != nil {
			return nil, err
		}
		sheet = SheetName
	}

	if err := writeSummarySheet(xlsx, sheet, s); err != nil {
		return nil, err
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(xlsx *excelize.File, sheet string, s *peerscore.Summary) error {
	header := s.Header()
	lastCol := len(header)
	lastRow := len(s.Rows) + 1

	_ = xlsx.SetColWidth(sheet, "A", "A", 14)
	if lastCol > 1 {
		_ = xlsx.SetColWidth(sheet, "B", colName(lastCol), 9)
	}

	for i, h := range header {
		if err := xlsx.SetCellValue(sheet, cell(i+1, 1), h); err != nil {
			return err
		}
	}
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom"), textAlignment("center")))
	_ = xlsx.SetCellStyle(sheet, cell(1, 1), cell(lastCol, 1), style)

	for i := range s.Rows {
		row := i + 2
		for j, v := range s.Values(i) {
			if err := xlsx.SetCellValue(sheet, cell(j+1, row), v); err != nil {
				return err
			}
		}
	}
	if len(s.Rows) == 0 {
		return nil
	}

	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold()))
	_ = xlsx.SetCellStyle(sheet, cell(1, 2), cell(1, lastRow), style)

	if s.Averages {
		// Total, average and question mean are the last three columns.
		totalCol := lastCol - 2
		style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), shaded()))
		_ = xlsx.SetCellStyle(sheet, cell(totalCol, 2), cell(totalCol, lastRow), style)
		style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), shaded(), decimalFormat()))
		_ = xlsx.SetCellStyle(sheet, cell(totalCol+1, 2), cell(lastCol, lastRow), style)
	}

	return xlsx.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})
}
