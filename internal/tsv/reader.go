// =============================================================================
// Locator Check - Tab-Separated Reader
// =============================================================================
//
// This module reads the tab-separated article export one line at a time.
//
// FORMAT:
//   - One record per line, fields separated by a single tab
//   - No quoting: a double quote is an ordinary character
//   - Line endings may be "\n", "\r\n" or a lone "\r"
//   - The first line is the header
//   - Text is decoded from the configured single-byte code page to UTF-8
//     before it is split, so every byte maps to exactly one character
//
// USAGE:
//   reader, err := tsv.Open(path, charmap.ISO8859_1)
//   if err != nil {
//       return err
//   }
//   defer reader.Close()
//
//   header := reader.Header()
//   for reader.Next() {
//       row := reader.Row()
//       // Process the row...
//   }
//
//   if err := reader.Err(); err != nil {
//       return err
//   }
//
// =============================================================================

package tsv

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/locator-check/internal/types"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Delimiter separates fields within a line.
const Delimiter = "\t"

// maxLineSize bounds a single line; the export has wide description columns.
var maxLineSize = 16 * 1024 * 1024

// =============================================================================
// READER
// =============================================================================

// Reader yields the rows of a tab-separated file after its header.
// It is finite and cannot be restarted.
type Reader struct {
	closer    io.Closer
	scanner   *bufio.Scanner
	header    []string
	current   types.Row
	rowNumber int
	err       error
}

// Open opens a file and reads its header line.
//
// PARAMETERS:
//   - path: The path to the tab-separated file.
//   - enc: The character encoding of the file.
//
// RETURNS:
//   - A pointer to the Reader, positioned after the header.
//   - An error if the file cannot be opened or the header cannot be read.
func Open(path string, enc encoding.Encoding) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	reader, err := NewReader(file, enc)
	if err != nil {
		file.Close()
		return nil, err
	}

	reader.closer = file
	return reader, nil
}

// NewReader wraps an io.Reader and reads its header line.
// The caller keeps ownership of r; Close on the result does not close it.
func NewReader(r io.Reader, enc encoding.Encoding) (*Reader, error) {
	decoded := transform.NewReader(r, enc.NewDecoder())

	scanner := bufio.NewScanner(decoded)
	initial := 64 * 1024
	if initial > maxLineSize {
		initial = maxLineSize
	}
	scanner.Buffer(make([]byte, 0, initial), maxLineSize)
	scanner.Split(scanLines)

	reader := &Reader{scanner: scanner}

	if err := reader.readHeader(); err != nil {
		return nil, err
	}

	return reader, nil
}

// readHeader consumes line 1. An empty input yields a header with a single
// empty field, the same as an empty first line.
func (r *Reader) readHeader() error {
	r.rowNumber = 1

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return fmt.Errorf("error reading header: %w", err)
		}
		r.header = []string{""}
		return nil
	}

	r.header = strings.Split(r.scanner.Text(), Delimiter)
	return nil
}

// Header returns the fields of the first line.
func (r *Reader) Header() []string {
	return r.header
}

// Next advances to the next row. Returns false when there are no more rows
// or a read error occurred.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			r.err = fmt.Errorf("error reading line %d: %w", r.rowNumber+1, err)
		}
		return false
	}

	r.rowNumber++
	r.current = types.Row{
		Number: r.rowNumber,
		Fields: strings.Split(r.scanner.Text(), Delimiter),
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

// Close closes the underlying file, if the reader opened one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// =============================================================================
// LINE SPLITTING
// =============================================================================

// scanLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a
// lone "\r". The terminator is not part of the token.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		// A carriage return: look one byte ahead for "\r\n".
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
