// =============================================================================
// Locator Check - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the binary
// with no arguments prints the locator report for MP.txt.
//
// COBRA CLI STRUCTURE:
//   rootCmd (locheck)            - locator report
//   ├── materialsCmd (locheck materials)
//   └── versionCmd (locheck version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the optional configuration file
//   3. Setting up logging (JSON on stderr, stdout is reserved for reports)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/locator-check/internal/config"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// appConfig is the configuration loaded before any command runs.
var appConfig *config.Config

// logger is shared by all commands.
var logger *zap.Logger

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "locheck",
	Short: "Locator Check - Summarise article locators by prefix",
	Long: `Locator Check reads the tab-separated article export (MP.txt), looks at
the locator column of every row, and prints how many locators fall into each
prefix category (PI, FOR, CTA, TEL, VID, AGL, OTHER) with two sample rows per
category.

Rows without a locator column and rows with an empty locator are skipped.

Example Usage:
  locheck                        # Report on MP.txt in the current directory
  locheck --config ./locheck.yaml
  locheck materials              # Finish types found in the descriptions`,

	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appConfig, err = config.Load(cfgFile, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}

		logger, err = newLogger(appConfig, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd.OutOrStdout(), appConfig, logger)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// --config flag: optional YAML configuration file. A missing default
	// file is not an error; a missing file given explicitly is.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	// --verbose flag: forces debug logging on stderr.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// newLogger builds the production logger for a run.
func newLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(cfg.Level())
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	base, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return base.With(zap.String("run_id", uuid.NewString())), nil
}
