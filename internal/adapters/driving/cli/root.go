// Package cli provides the cobra command tree for cardledger.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cardledger/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cardledger/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cardledger/internal/core/domain"
	"github.com/custodia-labs/cardledger/internal/core/ports/driving"
	"github.com/custodia-labs/cardledger/internal/core/services"
	"github.com/custodia-labs/cardledger/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=1.2.3".
var version = "dev"

// Exit codes.
const (
	ExitOK         = 0
	ExitProcessing = 1
	ExitUsage      = 2
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Global flags.
var (
	verbose   bool
	logLevel  string
	logFormat string
	configDir string
)

var settingsService driving.SettingsService

var rootCmd = &cobra.Command{
	Use:   "cardledger",
	Short: "Process credit card ledger events",
	Long: `cardledger opens credit card accounts, applies charges and credits,
and prints a balance summary for every account.

Events look like:
  Add Tom 4111111111111111 $1000
  Charge Tom $500
  Credit Tom $100`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/"+file.DirName+")")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	})
}

// setupServices wires the settings service for every subcommand.
// An unreadable config directory falls back to in-memory settings.
func setupServices(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		settingsService = services.NewSettingsService(memory.NewConfigStore())
		return nil
	}
	logger.Debug("config: %s", store.Path())
	settingsService = services.NewSettingsService(store)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return classify(rootCmd.Execute())
}

// classify maps errors to exit codes. Errors that already carry a code
// pass through.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if errors.Is(err, domain.ErrValidation) {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if strings.HasPrefix(err.Error(), "unknown command") {
		return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("%v\nRun 'cardledger --help' for usage.", err)}
	}
	return &ExitError{Code: ExitProcessing, Message: err.Error()}
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		return nil
	}
}
