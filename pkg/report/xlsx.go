package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"agritech/entities"
)

const xlsxSheet = "Registrants"

// WriteXLSX builds the spreadsheet flavor of the flat export: same column
// selection and filters as the CSV, raw (non-uppercased) values, bold
// frozen header row.
func WriteXLSX(rs []entities.Registrant, opt CSVOptions) (*excelize.File, error) {
	cols := selectColumns(opt.Columns)

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", xlsxSheet)

	headStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2E7D32"}},
	})
	if err != nil {
		return nil, err
	}

	for i, c := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(xlsxSheet, cell, c.Header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(xlsxSheet, cell, cell, headStyle); err != nil {
			return nil, err
		}
	}

	rowNo := 2
	for i := range rs {
		r := &rs[i]
		if r.DeletedAt.Valid {
			continue
		}
		if opt.Registry != "" && r.Registry != opt.Registry {
			continue
		}
		if opt.Crop != "" && !hasCrop(r, opt.Crop) {
			continue
		}
		for j, c := range cols {
			cell, err := excelize.CoordinatesToCellName(j+1, rowNo)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(xlsxSheet, cell, c.Value(r)); err != nil {
				return nil, err
			}
		}
		rowNo++
	}

	if err := f.SetPanes(xlsxSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}
	return f, nil
}

// XLSXFilename follows the same convention as the PDF reports.
func XLSXFilename(date string) string {
	return fmt.Sprintf("AgriTech_Registrants_Export_%s.xlsx", date)
}
