// Package xlsxx reads a campaign log straight from an .xlsx workbook,
// producing the same trimmed cell grid the CSV parser emits so both
// formats share one pipeline.
package xlsxx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadGrid reads the named sheet (or the workbook's first sheet when name
// is empty) into a grid of trimmed cells. Fully blank rows are skipped,
// matching the CSV scanner's blank-line behavior.
func ReadGrid(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var grid [][]string
	for _, row := range rows {
		blank := true
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.TrimSpace(c)
			if cells[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
