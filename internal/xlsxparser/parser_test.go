package xlsxparser

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows into a new workbook and returns its path. A
// non-empty dimension is recorded as the sheet's used range, the way Excel
// saves it.
func writeWorkbook(t *testing.T, sheet, dimension string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &cells))
	}

	if dimension != "" {
		require.NoError(t, f.SetSheetDimension(sheet, dimension))
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func fullRow(prefix string, n int) []string {
	row := make([]string, n)
	for i := range row {
		row[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return row
}

func TestReaderFirstSheet(t *testing.T) {
	data := fullRow("r", 25)
	data[23] = "PI.12345"

	path := writeWorkbook(t, "Sheet1", "", [][]string{fullRow("H", 25), data, fullRow("s", 25)})

	r, err := Open(path, "")
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, "Sheet1", r.Sheet())
	require.Len(t, r.Header(), 25)
	assert.Equal(t, "H23", r.Header()[23])
	assert.Equal(t, "H24", r.Header()[24])

	require.True(t, r.Next())
	assert.Equal(t, 2, r.Row().Number)
	assert.Equal(t, "PI.12345", r.Row().Fields[23])
	assert.Equal(t, "r1", r.Row().Fields[1])

	require.True(t, r.Next())
	assert.Equal(t, 3, r.Row().Number)

	assert.False(t, r.Next())
	assert.NoError(t, r.Err())
}

func TestReaderNamedSheet(t *testing.T) {
	path := writeWorkbook(t, "MP", "", [][]string{fullRow("H", 25), fullRow("r", 25)})

	r, err := Open(path, "MP")
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, "MP", r.Sheet())
	require.True(t, r.Next())
	assert.Equal(t, "r23", r.Row().Fields[23])
}

func TestReaderPadsToUsedRange(t *testing.T) {
	header := fullRow("H", 25)
	header[24] = ""

	data := make([]string, 23)
	data[1] = "CODE12345"
	data[2] = "FORMICA BLANCA"
	data[22] = "w"

	path := writeWorkbook(t, "Sheet1", "A1:Y2", [][]string{header, data})

	r, err := Open(path, "")
	require.NoError(t, err)
	defer r.Close()

	require.Len(t, r.Header(), 25)
	assert.Equal(t, "H23", r.Header()[23])
	assert.Equal(t, "", r.Header()[24])

	require.True(t, r.Next())
	require.Len(t, r.Row().Fields, 25)
	assert.Equal(t, "CODE12345", r.Row().Fields[1])
	assert.Equal(t, "FORMICA BLANCA", r.Row().Fields[2])
	assert.Equal(t, "", r.Row().Fields[23])

	assert.False(t, r.Next())
	assert.NoError(t, r.Err())
}

func TestReaderPadsToHeaderWidth(t *testing.T) {
	data := fullRow("r", 10)

	path := writeWorkbook(t, "Sheet1", "", [][]string{fullRow("H", 25), data})

	r, err := Open(path, "")
	require.NoError(t, err)
	defer r.Close()

	require.True(t, r.Next())
	require.Len(t, r.Row().Fields, 25)
	assert.Equal(t, "r9", r.Row().Fields[9])
	assert.Equal(t, "", r.Row().Fields[23])
}

func TestReaderMissingSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", "", [][]string{fullRow("H", 25)})

	_, err := Open(path, "Nope")
	assert.Error(t, err)
}

func TestReaderMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	assert.Error(t, err)
}
