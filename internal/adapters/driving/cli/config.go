package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cardledger/internal/core/domain"
	"github.com/custodia-labs/cardledger/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long: `View and change settings stored in config.toml.

Values:
  log.level     debug, info, warn or error
  log.format    text or json
  output.color  true or false
  input.format  text or json`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Args:  usageArgs(cobra.ExactArgs(2)),
	RunE:  runConfigSet,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runConfigReset,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, _ []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		fmt.Fprintln(cmd.OutOrStdout(), settingsService.Path())
		return nil
	},
}

func init() {
	// Keys do not depend on a store, so the help text can be built before
	// services are wired.
	configSetCmd.Long = "Change a setting.\n\nSupported keys: " +
		strings.Join(services.NewSettingsService(nil).Keys(), ", ")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	defaults := settingsService.GetDefaults()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Level: %s (default: %s)\n", settings.Log.Level, defaults.Log.Level)
	cmd.Printf("  Format: %s (default: %s)\n", settings.Log.Format, defaults.Log.Format)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Color: %s (default: %s)\n", yesNo(settings.Output.Color), yesNo(defaults.Output.Color))
	cmd.Println()

	cmd.Println("[Input]")
	cmd.Printf("  Format: %s (default: %s)\n", settings.Input.Format.Description(), defaults.Input.Format.Description())
	cmd.Println()

	cmd.Printf("File: %s\n", settingsService.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	keys := settingsService.Keys()
	if !slices.Contains(keys, key) {
		return &ExitError{
			Code:    ExitUsage,
			Message: fmt.Sprintf("unknown setting %q; supported keys: %s", key, strings.Join(keys, ", ")),
		}
	}
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
