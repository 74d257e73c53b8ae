package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oh-lucy/themegen/internal/builder"
	"github.com/oh-lucy/themegen/internal/config"
	"github.com/oh-lucy/themegen/internal/palettes"
	"github.com/oh-lucy/themegen/internal/variants"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(palettesCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List theme variants",
	Long:    "List every palette x transform variant and the file it builds to.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout(), GetConfig())
	},
}

var palettesCmd = &cobra.Command{
	Use:   "palettes [name]",
	Short: "List base palettes",
	Long: `List base palettes with their template and where they were loaded from.
With a name, show that palette's base colors.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runPalette(cmd.OutOrStdout(), GetConfig(), args[0])
		}
		return runPalettes(cmd.OutOrStdout(), GetConfig())
	},
}

func runList(out io.Writer, cfg *config.Config) error {
	reg, err := variants.Load(cfg.ProjectDir)
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return writeJSON(out, reg.Variants())
	}

	rows := make([][]string, 0, len(reg.Names()))
	for _, v := range reg.Variants() {
		rows = append(rows, []string{
			v.Name,
			v.Palette,
			v.Template,
			string(v.Transform),
			builder.OutputPath(cfg.OutputDir, v.Name),
		})
	}
	return writeTable(out, []string{"VARIANT", "PALETTE", "TEMPLATE", "TRANSFORM", "OUTPUT"}, rows)
}

func runPalettes(out io.Writer, cfg *config.Config) error {
	pals, err := palettes.LoadPalettesFromSearchPaths(cfg.ProjectDir)
	if err != nil {
		return fmt.Errorf("failed to load palettes: %w", err)
	}

	if IsJSONOutput() {
		return writeJSON(out, pals)
	}

	rows := make([][]string, 0, len(pals))
	for _, p := range pals {
		rows = append(rows, []string{p.Name, p.Template, strconv.Itoa(len(p.Colors)), p.Source})
	}
	return writeTable(out, []string{"PALETTE", "TEMPLATE", "COLORS", "SOURCE"}, rows)
}

func runPalette(out io.Writer, cfg *config.Config, name string) error {
	palette, err := palettes.FindPalette(cfg.ProjectDir, name)
	if err != nil {
		return fmt.Errorf("palette %q: %w", name, err)
	}

	if IsJSONOutput() {
		return writeJSON(out, palette)
	}

	rows := make([][]string, 0, len(palette.Colors))
	for _, key := range palette.Keys() {
		rows = append(rows, []string{key, palette.Colors[key]})
	}
	return writeTable(out, []string{"KEY", "COLOR"}, rows)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
