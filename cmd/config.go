package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/prank-cli/internal/adapters/i18n"
	"github.com/xvierd/prank-cli/internal/adapters/tui"
	"github.com/xvierd/prank-cli/internal/config"
	"github.com/xvierd/prank-cli/internal/domain"
)

var configShow bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit the default screen style, mode and language",
	Long: `Interactively choose the screen style, progress mode, timed duration,
language and desktop notifications used when prank starts.
Use --show to print the current configuration without changing it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configShow {
			printConfig(cmd.OutOrStdout(), app.config, app.configPath)
			return nil
		}
		return editConfig(cmd.OutOrStdout(), app.config)
	},
}

func init() {
	configCmd.Flags().BoolVar(&configShow, "show", false, "Print the current configuration and exit")
	rootCmd.AddCommand(configCmd)
}

func printConfig(w io.Writer, cfg *config.Config, path string) {
	variant := cfg.Variant
	if variant == "" {
		variant = "auto"
	}
	locale := cfg.Locale
	if locale == "" {
		locale = "auto"
	}
	desktop := "off"
	if cfg.Notifications.Desktop {
		desktop = "on"
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Config file:    %s\n", path)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Variant:        %s\n", variant)
	fmt.Fprintf(w, "  Mode:           %s\n", cfg.Mode)
	fmt.Fprintf(w, "  Timed duration: %dh %dm\n", cfg.Hours, cfg.Minutes)
	fmt.Fprintf(w, "  Loop cycle:     %s\n", cfg.LoopCycle)
	fmt.Fprintf(w, "  Language:       %s\n", locale)
	fmt.Fprintf(w, "  Notifications:  %s\n", desktop)
	fmt.Fprintln(w)
}

// editConfig walks through the settings with prompts and saves the result.
func editConfig(w io.Writer, cfg *config.Config) error {
	theme := &cfg.Theme

	// Variant: auto plus each style
	variants := []tui.Choice{{Value: "auto", Hint: "Match the detected platform"}}
	saved := 0
	for i, v := range domain.Variants {
		variants = append(variants, tui.Choice{Value: string(v), Hint: v.Label()})
		if string(v) == cfg.Variant {
			saved = i + 1
		}
	}
	res := tui.RunChoice("Screen style", variants, saved, theme)
	if res.Aborted {
		fmt.Fprintln(w, "  No changes made.")
		return nil
	}
	cfg.Variant = ""
	if res.Index > 0 {
		cfg.Variant = variants[res.Index].Value
	}

	// Mode
	modes := []tui.Choice{
		{Value: string(domain.ModeLoop), Hint: "Progress climbs to 100% and starts over"},
		{Value: string(domain.ModeTimed), Hint: "Progress reaches 100% after a set duration"},
	}
	saved = 0
	if cfg.Mode == string(domain.ModeTimed) {
		saved = 1
	}
	res = tui.RunChoice("Mode", modes, saved, theme)
	if res.Aborted {
		fmt.Fprintln(w, "  No changes made.")
		return nil
	}
	cfg.Mode = modes[res.Index].Value

	if cfg.Mode == string(domain.ModeTimed) {
		if aborted := editDuration(cfg); aborted {
			fmt.Fprintln(w, "  No changes made.")
			return nil
		}
	}

	// Language: auto plus each locale
	tr := i18n.New(i18n.DefaultLocale)
	locales := []tui.Choice{{Value: "auto", Hint: "Follow LANG on first run"}}
	saved = 0
	for i, l := range tr.Locales() {
		locales = append(locales, tui.Choice{Value: l, Hint: i18n.LocaleName(l)})
		if l == cfg.Locale {
			saved = i + 1
		}
	}
	res = tui.RunChoice("Language", locales, saved, theme)
	if res.Aborted {
		fmt.Fprintln(w, "  No changes made.")
		return nil
	}
	cfg.Locale = ""
	if res.Index > 0 {
		cfg.Locale = locales[res.Index].Value
	}

	// Desktop notifications
	toggles := []tui.Choice{
		{Value: "off", Hint: "Messages stay on screen"},
		{Value: "on", Hint: "Also send desktop notifications"},
	}
	saved = 0
	if cfg.Notifications.Desktop {
		saved = 1
	}
	res = tui.RunChoice("Desktop notifications", toggles, saved, theme)
	if res.Aborted {
		fmt.Fprintln(w, "  No changes made.")
		return nil
	}
	cfg.Notifications.Desktop = res.Index == 1

	if err := config.SaveTo(app.configPath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(w, "  Saved to %s\n", app.configPath)
	return nil
}

// editDuration prompts for the timed duration.
func editDuration(cfg *config.Config) (aborted bool) {
	hours := tui.RunNumberPrompt("Hours", cfg.Hours, domain.MaxHours, &cfg.Theme)
	if hours.Aborted {
		return true
	}
	minutes := tui.RunNumberPrompt("Minutes", cfg.Minutes, domain.MaxMinutes, &cfg.Theme)
	if minutes.Aborted {
		return true
	}

	cfg.Hours = hours.Value
	cfg.Minutes = minutes.Value
	if cfg.Hours == 0 && cfg.Minutes == 0 {
		// Timed mode cannot start without a duration; fall back to a short run.
		cfg.Minutes = int((5 * time.Minute).Minutes())
	}
	return false
}
