package cmd

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/xvierd/prank-cli/internal/domain"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the available screen styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		current := app.controller.Variant()
		detected := domain.DetectVariant(app.controller.PlatformID())

		for i, v := range domain.Variants {
			marker := " "
			if v == current {
				marker = "▸"
			}
			note := ""
			if v == detected {
				note = " (detected)"
			}
			fmt.Fprintf(out, "%s %d  %-16s %s%s\n", marker, i+1, v, v.Label(), note)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}

// resolveVariant accepts what ParseVariant does plus fuzzy partial names
// ("mac" -> mac-update).
func resolveVariant(input string) (domain.DisplayVariant, error) {
	v, err := domain.ParseVariant(input)
	if err == nil {
		return v, nil
	}

	names := make([]string, len(domain.Variants))
	for i, v := range domain.Variants {
		names[i] = string(v)
	}
	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return "", err
	}
	if len(matches) > 1 && matches[0].Score == matches[1].Score {
		return "", errors.Join(err, fmt.Errorf("%q matches both %s and %s", input, matches[0].Str, matches[1].Str))
	}
	return domain.Variants[matches[0].Index], nil
}
