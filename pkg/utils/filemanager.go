// =============================================================================
// Locator Check - File Utilities
// =============================================================================
//
// Small helpers shared by the command layer and the readers:
//   - Input format detection by file extension
//   - Character-safe truncation for report output
//
// =============================================================================

package utils

import (
	"path/filepath"
	"strings"
)

// =============================================================================
// INPUT FORMATS
// =============================================================================

// InputFormat identifies how an input file is read.
type InputFormat int

const (
	// FormatTSV is a tab-separated text export.
	FormatTSV InputFormat = iota

	// FormatXLSX is an Excel workbook.
	FormatXLSX
)

// String returns the format name used in log messages.
func (f InputFormat) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	default:
		return "tsv"
	}
}

// DetectInputFormat picks the reader for a file from its extension.
// Anything that is not a workbook is treated as tab-separated text.
func DetectInputFormat(path string) InputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatTSV
	}
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// Truncate returns at most n characters of s. Shorter values are returned
// unchanged; nothing is ever padded.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
