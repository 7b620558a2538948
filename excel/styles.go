package excel

import (
	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"
)

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func colName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}

func defaultStyle() *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			Vertical: "center",
		},
	}
}

func decimalFormat() *excelize.Style {
	fmt := "0.00"
	return &excelize.Style{
		CustomNumFmt: &fmt,
	}
}

func fontBold() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	}
}

func textAlignment(a string) *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: a,
			Vertical:   "center",
		},
	}
}

func thinBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 1,
		})
	}
	return s
}

func shaded() *excelize.Style {
	return &excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#F2F2F2"},
			Pattern: 1,
		},
	}
}

func mergeStyles(ext ...*excelize.Style) *excelize.Style {
	if len(ext) == 0 {
		return nil
	}
	for _, e := range ext[1:] {
		_ = mergo.Merge(ext[0], e, mergo.WithOverride)
	}
	return ext[0]
}
