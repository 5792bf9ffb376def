// Package cmd provides the CLI commands for the prank application.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/prank-cli/internal/adapters/tui"
	"github.com/xvierd/prank-cli/internal/config"
	"github.com/xvierd/prank-cli/internal/domain"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath  string
	variantFlag string
	modeFlag    string
	hoursFlag   string
	minutesFlag string
	localeFlag  string
	debugFlag   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prank",
	Short: "prank - a fullscreen fake crash and update screen for your terminal",
	Long: `prank takes over the terminal with a convincing crash screen or a
never-ending system update, complete with a believable progress bar.

Run "prank" with no arguments to open the screen with its settings sidebar.
Press enter to start; esc leaves the fullscreen and stops the show.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runScreen,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.prank/config.toml)")
	rootCmd.PersistentFlags().StringVar(&variantFlag, "variant", "", "Screen style: bsod, windows-update, mac-update (partial names work)")
	rootCmd.PersistentFlags().StringVarP(&modeFlag, "mode", "m", "", "Progress mode: loop or timed")
	rootCmd.PersistentFlags().StringVar(&hoursFlag, "hours", "", "Timed mode hours (0-24)")
	rootCmd.PersistentFlags().StringVar(&minutesFlag, "minutes", "", "Timed mode minutes (0-59)")
	rootCmd.PersistentFlags().StringVarP(&localeFlag, "locale", "l", "", "Language: zh-TW, en, ja")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write debug logs to the log file")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("prank\nVersion: {{.Version}}\n")
}

// runScreen opens the interactive screen.
func runScreen(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	model := tui.NewModel(app.controller, app.display, app.translator, tui.Options{
		Theme:          &app.config.Theme,
		FrameInterval:  time.Duration(app.config.FrameInterval),
		Notifier:       app.notifier,
		OnLocaleChange: saveLocale,
	})

	app.logger.Info().
		Str("platform", app.controller.PlatformID()).
		Str("variant", string(app.controller.Variant())).
		Msg("screen opened")

	err := tui.Run(ctx, model, app.logger)

	// The program may end while a session is running (signal, ctrl+c).
	if stopErr := app.controller.Stop(); stopErr == nil {
		app.logger.Info().Msg("session stopped on exit")
	}
	return err
}

// saveLocale persists the language picked on screen.
func saveLocale(locale string) {
	app.config.Locale = locale
	if err := config.SaveTo(app.configPath, app.config); err != nil {
		app.logger.Warn().Err(err).Str("locale", locale).Msg("failed to save locale")
	}
}

// applyFlags overrides settings loaded from config with command line flags.
func applyFlags(s *domain.Settings) error {
	if variantFlag != "" {
		v, err := resolveVariant(variantFlag)
		if err != nil {
			return err
		}
		s.Variant = v
	}
	if modeFlag != "" {
		m, err := domain.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		s.Mode = m
	}
	if hoursFlag != "" && !s.SetHour(hoursFlag) {
		return fmt.Errorf("invalid hours %q", hoursFlag)
	}
	if minutesFlag != "" && !s.SetMinute(minutesFlag) {
		return fmt.Errorf("invalid minutes %q", minutesFlag)
	}
	return nil
}
