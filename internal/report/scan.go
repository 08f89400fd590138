// =============================================================================
// Locator Check - Row Scanner
// =============================================================================
//
// Scan makes the single forward pass over the input:
//
//   1. Rows without a locator column (fewer than 24 fields) are skipped
//   2. Rows whose locator is blank after trimming are skipped
//   3. Every other row is classified and its sample recorded
//
// Skipped rows are not errors. They only show up in debug logs and in the
// accumulator's skip counters.
//
// =============================================================================

package report

import (
	"errors"
	"fmt"

	"github.com/ginjaninja78/locator-check/internal/classifier"
	"github.com/ginjaninja78/locator-check/internal/types"
	"go.uber.org/zap"
)

// ErrShortHeader is returned when the header lacks a labelled column.
var ErrShortHeader = errors.New("header is missing labelled columns")

// Rows is the sequence of data rows consumed by Scan.
type Rows interface {
	Next() bool
	Row() types.Row
	Err() error
}

// HeaderLabels returns the header texts of the diagnostic label columns.
//
// RETURNS:
//   - One label per entry of classifier.HeaderLabelColumns.
//   - ErrShortHeader if the header does not reach the last label column.
func HeaderLabels(header []string) ([]string, error) {
	labels := make([]string, 0, len(classifier.HeaderLabelColumns))
	for _, column := range classifier.HeaderLabelColumns {
		if column >= len(header) {
			return nil, fmt.Errorf("%w: column %d requested, header has %d fields", ErrShortHeader, column, len(header))
		}
		labels = append(labels, header[column])
	}
	return labels, nil
}

// Scan classifies every row and records it in acc.
//
// PARAMETERS:
//   - rows: The data rows, header already consumed.
//   - acc: The accumulator to fill. Nil starts a new one.
//   - logger: Receives per-row debug messages. Nil disables logging.
//
// RETURNS:
//   - The filled accumulator.
//   - An error if reading fails or a row cannot be sampled. No partial
//     accumulator is returned in that case.
func Scan(rows Rows, acc *Accumulator, logger *zap.Logger) (*Accumulator, error) {
	if acc == nil {
		acc = NewAccumulator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	for rows.Next() {
		row := rows.Row()

		if len(row.Fields) <= classifier.LocatorColumn {
			acc.ShortRows++
			logger.Debug("Skipping row without locator column",
				zap.Int("line", row.Number),
				zap.Int("fields", len(row.Fields)))
			continue
		}

		locator, ok := classifier.Locator(row.Fields)
		if !ok {
			acc.EmptyLocators++
			logger.Debug("Skipping row with empty locator", zap.Int("line", row.Number))
			continue
		}

		category := classifier.Classify(locator)

		sample, err := classifier.NewSample(locator, row.Fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", row.Number, err)
		}

		acc.Add(category, sample)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.Info("Scan complete",
		zap.Int("classified", acc.Total()),
		zap.Int("short_rows", acc.ShortRows),
		zap.Int("empty_locators", acc.EmptyLocators))

	return acc, nil
}
