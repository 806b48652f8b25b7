package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Test Matrix"

var exportHeader = []string{
	"Visit No.", "LN", "Title", "First Name", "Last Name",
	"Gender", "Age", "Height", "Rights",
}

// WriteXLSX renders the report as a spreadsheet: one row per visit, one
// column per canonical test, true as "1" and false as "-".
func WriteXLSX(w io.Writer, rep *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("export: creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("export: removing default sheet: %w", err)
	}

	header := make([]any, 0, len(exportHeader)+len(Columns))
	for _, h := range exportHeader {
		header = append(header, h)
	}
	for _, col := range Columns {
		header = append(header, col)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}

	for i, row := range rep.Data {
		cells := make([]any, 0, len(header))
		cells = append(cells, row.VisitNumber, row.LN, row.Title,
			row.FirstName, row.LastName, row.Gender)
		if row.Age != nil {
			cells = append(cells, *row.Age)
		} else {
			cells = append(cells, "")
		}
		if row.Height != nil {
			cells = append(cells, *row.Height)
		} else {
			cells = append(cells, "")
		}
		cells = append(cells, row.Rights)
		for _, col := range Columns {
			if row.Flags[col] {
				cells = append(cells, "1")
			} else {
				cells = append(cells, "-")
			}
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: cell address: %w", err)
		}
		if err := f.SetSheetRow(exportSheet, addr, &cells); err != nil {
			return fmt.Errorf("export: writing row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: writing workbook: %w", err)
	}
	return nil
}
