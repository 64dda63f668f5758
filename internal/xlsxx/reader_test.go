package xlsxx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "log.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadGrid(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Date", "Campaign", "Count"},
		{"2024-01-05", "Spring Promo", 1200},
	})
	grid, err := ReadGrid(path, "")
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"Date", "Campaign", "Count"}, grid[0])
	assert.Equal(t, "Spring Promo", grid[1][1])
	assert.Equal(t, "1200", grid[1][2])
}

func TestReadGridSkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Date", "Campaign", "Count"},
		{"", "", ""},
		{"2024-01-05", "A", 100},
	})
	grid, err := ReadGrid(path, "")
	require.NoError(t, err)
	assert.Len(t, grid, 2)
}

func TestReadGridNamedSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Mailings")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Mailings", "A1", &[]interface{}{"Date", "Campaign", "Count"}))
	path := filepath.Join(t.TempDir(), "log.xlsx")
	require.NoError(t, f.SaveAs(path))

	grid, err := ReadGrid(path, "Mailings")
	require.NoError(t, err)
	require.Len(t, grid, 1)
	assert.Equal(t, "Campaign", grid[0][1])
}

func TestReadGridMissingSheet(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{{"Date"}})
	_, err := ReadGrid(path, "Nope")
	assert.Error(t, err)
}

func TestReadGridMissingFile(t *testing.T) {
	_, err := ReadGrid(filepath.Join(t.TempDir(), "absent.xlsx"), "")
	assert.Error(t, err)
}
