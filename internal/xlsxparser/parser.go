// =============================================================================
// Locator Check - XLSX Reader
// =============================================================================
//
// This module reads the article export when it has been saved as an Excel
// workbook instead of tab-separated text. Rows are streamed from a single
// worksheet and handed out with the same shape as the text reader:
//   - The first row is the header
//   - Data rows are numbered from 2
//   - Each row is a slice of cell values, column A first
//
// Excel does not store trailing empty cells, so every row (header included)
// is padded with empty fields up to the width of the sheet's used range.
// When the workbook records no usable range the header width is used.
//
// Cell values are already Unicode, so no decoding is applied.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/locator-check/internal/types"
	"github.com/xuri/excelize/v2"
)

// =============================================================================
// READER
// =============================================================================

// Reader yields the rows of one worksheet after its header.
type Reader struct {
	file      *excelize.File
	rows      *excelize.Rows
	sheet     string
	width     int
	header    []string
	current   types.Row
	rowNumber int
	err       error
}

// Open opens a workbook and reads the header row of a worksheet.
//
// PARAMETERS:
//   - path: The path to the XLSX file.
//   - sheet: The worksheet to read. Empty selects the first sheet.
//
// RETURNS:
//   - A pointer to the Reader, positioned after the header.
//   - An error if the workbook or worksheet cannot be opened.
func Open(path, sheet string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			f.Close()
			return nil, fmt.Errorf("workbook has no sheets")
		}
	}

	width, err := sheetWidth(f, sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read sheet '%s': %w", sheet, err)
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read sheet '%s': %w", sheet, err)
	}

	reader := &Reader{
		file:  f,
		rows:  rows,
		sheet: sheet,
		width: width,
	}

	if err := reader.readHeader(); err != nil {
		reader.Close()
		return nil, err
	}

	return reader, nil
}

// readHeader consumes the first row. An empty sheet yields a header with a
// single empty field.
func (r *Reader) readHeader() error {
	r.rowNumber = 1

	if !r.rows.Next() {
		if err := r.rows.Error(); err != nil {
			return fmt.Errorf("error reading header: %w", err)
		}
		r.header = []string{""}
		return nil
	}

	header, err := r.rows.Columns()
	if err != nil {
		return fmt.Errorf("error reading header: %w", err)
	}
	if len(header) > r.width {
		r.width = len(header)
	}
	if r.width == 0 {
		r.width = 1
	}

	r.header = pad(header, r.width)
	return nil
}

// sheetWidth returns the last column of the sheet's recorded used range,
// or 0 when the workbook does not record one.
func sheetWidth(f *excelize.File, sheet string) (int, error) {
	ref, err := f.GetSheetDimension(sheet)
	if err != nil {
		return 0, err
	}
	if ref == "" {
		return 0, nil
	}

	last := ref
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		last = ref[i+1:]
	}

	col, _, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return 0, nil
	}
	return col, nil
}

// pad extends cells with empty fields up to width. Longer rows are kept whole.
func pad(cells []string, width int) []string {
	if len(cells) >= width {
		return cells
	}
	padded := make([]string, width)
	copy(padded, cells)
	return padded
}

// Sheet returns the name of the worksheet being read.
func (r *Reader) Sheet() string {
	return r.sheet
}

// Header returns the cells of the first row.
func (r *Reader) Header() []string {
	return r.header
}

// Next advances to the next row. Returns false when there are no more rows
// or a read error occurred.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}

	if !r.rows.Next() {
		if err := r.rows.Error(); err != nil {
			r.err = fmt.Errorf("error reading row %d: %w", r.rowNumber+1, err)
		}
		return false
	}

	r.rowNumber++

	cells, err := r.rows.Columns()
	if err != nil {
		r.err = fmt.Errorf("error reading row %d: %w", r.rowNumber, err)
		return false
	}

	r.current = types.Row{
		Number: r.rowNumber,
		Fields: pad(cells, r.width),
	}

	return true
}

// Row returns the current row.
func (r *Reader) Row() types.Row {
	return r.current
}

// Err returns any error that occurred while reading.
func (r *Reader) Err() error {
	return r.err
}

// Close releases the row iterator and the workbook.
func (r *Reader) Close() error {
	if r.rows != nil {
		if err := r.rows.Close(); err != nil {
			r.file.Close()
			return err
		}
	}
	return r.file.Close()
}
