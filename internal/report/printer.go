// =============================================================================
// Locator Check - Report Printer
// =============================================================================
//
// OUTPUT FORMAT:
//
//   Column 23 header: <label>
//   Column 24 header: <label>
//
//
//   PI. entries: 5
//     Loc: [PI.12345]
//     Código: C001
//     Desc: Some description
//     ...
//
// Categories are printed in fixed order and skipped when empty. At most
// SampleLimit samples follow each category line; the count is the true total.
//
// =============================================================================

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ginjaninja78/locator-check/internal/classifier"
	"github.com/ginjaninja78/locator-check/internal/types"
)

// WriteHeader prints the diagnostic header labels followed by a blank line.
func WriteHeader(w io.Writer, labels []string) error {
	writer := bufio.NewWriter(w)

	for i, label := range labels {
		column := i
		if i < len(classifier.HeaderLabelColumns) {
			column = classifier.HeaderLabelColumns[i]
		}
		writer.WriteString(fmt.Sprintf("Column %d header: %s\n", column, label))
	}
	writer.WriteString("\n")

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// Write prints the per-category summary.
func Write(w io.Writer, acc *Accumulator) error {
	writer := bufio.NewWriter(w)

	for _, category := range types.Categories {
		count := acc.Count(category)
		if count == 0 {
			continue
		}

		writer.WriteString(fmt.Sprintf("\n%s. entries: %d\n", category, count))

		samples := acc.Samples(category)
		if len(samples) > SampleLimit {
			samples = samples[:SampleLimit]
		}
		for _, sample := range samples {
			writeSample(writer, sample)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// writeSample prints one sample block.
func writeSample(writer *bufio.Writer, sample types.SampleRecord) {
	writer.WriteString(fmt.Sprintf("  Loc: [%s]\n", sample.Locator))
	// Written as UTF-8; only field values pass through the input decoding.
	writer.WriteString(fmt.Sprintf("  Código: %s\n", sample.Code))
	writer.WriteString(fmt.Sprintf("  Desc: %s\n", sample.Description))
}
