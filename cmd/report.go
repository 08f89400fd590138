// =============================================================================
// Locator Check - Report Pipeline
// =============================================================================
//
// This file runs the locator report, the default action of the root command.
//
// PROCESSING PIPELINE:
//   1. Open the input file with the reader matching its format
//   2. Print the diagnostic header labels (columns 23 and 24)
//   3. Scan every data row into the accumulator
//   4. Print the per-category summary
//
// Any failure stops the run before the summary is printed.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/locator-check/internal/config"
	"github.com/ginjaninja78/locator-check/internal/report"
	"github.com/ginjaninja78/locator-check/internal/source"
	"github.com/ginjaninja78/locator-check/pkg/utils"
	"go.uber.org/zap"
)

// runReport is the main function that orchestrates the locator report.
//
// PARAMETERS:
//   - out: Where the report is written (stdout in production).
//   - cfg: The loaded configuration.
//   - logger: The run logger.
//
// RETURNS:
//   - An error if the input cannot be read or is malformed.
func runReport(out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	src, err := openSource(cfg, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	// =========================================================================
	// STEP 1: HEADER LABELS
	// =========================================================================

	labels, err := report.HeaderLabels(src.Header())
	if err != nil {
		return fmt.Errorf("failed to read header of %s: %w", cfg.InputFile, err)
	}

	if err := report.WriteHeader(out, labels); err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: SCAN ROWS
	// =========================================================================

	acc, err := report.Scan(src, report.NewAccumulator(), logger)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", cfg.InputFile, err)
	}

	// =========================================================================
	// STEP 3: PRINT SUMMARY
	// =========================================================================

	return report.Write(out, acc)
}

// openSource opens the configured input and logs which reader serves it.
func openSource(cfg *config.Config, logger *zap.Logger) (source.Source, error) {
	format := utils.DetectInputFormat(cfg.InputFile)

	logger.Debug("Opening input",
		zap.String("file", cfg.InputFile),
		zap.Stringer("format", format),
		zap.String("encoding", cfg.Encoding))

	src, err := source.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", cfg.InputFile, err)
	}

	if sheet := source.Sheet(src); sheet != "" {
		logger.Debug("Reading worksheet", zap.String("sheet", sheet))
	}

	return src, nil
}
