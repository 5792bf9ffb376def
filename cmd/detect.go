package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/prank-cli/internal/adapters/i18n"
	"github.com/xvierd/prank-cli/internal/domain"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected platform, screen style and language",
	Long: `Show what prank detected about this machine and which screen style and
language it would use. Set PRANK_PLATFORM to override the detected platform.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		platformID := app.controller.PlatformID()
		if platformID == "" {
			platformID = "unknown"
		}
		settings := app.controller.Settings()

		fmt.Fprintf(out, "Platform:  %s\n", platformID)
		fmt.Fprintf(out, "Detected:  %s (%s)\n", domain.DetectVariant(platformID), domain.DetectVariant(platformID).Label())
		fmt.Fprintf(out, "Variant:   %s\n", settings.Variant)
		fmt.Fprintf(out, "Mode:      %s\n", settings.Mode)
		fmt.Fprintf(out, "Locale:    %s (system: %s)\n", settings.Locale, i18n.DetectSystemLocale(os.Getenv))
		fmt.Fprintf(out, "Config:    %s\n", app.configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
