// =============================================================================
// Locator Check - Materials Command
// =============================================================================
//
// This file defines the 'materials' command, which summarises the finish
// types (formica, canto, vidrio, ...) named in the article descriptions.
//
// COMMAND USAGE:
//   locheck materials
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/locator-check/internal/config"
	"github.com/ginjaninja78/locator-check/internal/materials"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// materialsCmd represents the 'materials' command.
var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Summarise finish types found in article descriptions",
	Long: `The materials command reads the same export as the locator report and
groups articles by the finish named at the start of their description
(FORMICA, CANTO, VIDRIO, TELA, DURALAM, MADECANTO, PINTURA).

Placeholder articles (GENERICO, CODIGO INACTIVO) are ignored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMaterials(cmd.OutOrStdout(), appConfig, logger)
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

// runMaterials scans the input and prints the materials summary.
func runMaterials(out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	src, err := openSource(cfg, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	summary, err := materials.Scan(src, logger)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", cfg.InputFile, err)
	}

	return materials.Write(out, summary)
}
