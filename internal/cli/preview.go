package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oh-lucy/themegen/internal/config"
	"github.com/oh-lucy/themegen/internal/palettes"
	"github.com/oh-lucy/themegen/internal/variants"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <variant>",
	Short: "Show a variant's resolved colors",
	Long: `Show every color of a variant after its transform has been applied.
Swatches are drawn when stdout is a terminal.

Examples:
  themegen preview oh-lucy-evening
  themegen preview lucy --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd.OutOrStdout(), GetConfig(), args[0], stdoutIsTerminal())
	},
}

type previewColor struct {
	Key   string `json:"key"`
	Base  string `json:"base"`
	Value string `json:"value"`
}

func runPreview(out io.Writer, cfg *config.Config, name string, swatches bool) error {
	reg, err := variants.Load(cfg.ProjectDir)
	if err != nil {
		return err
	}
	d, err := reg.Resolve(name)
	if err != nil {
		return err
	}

	resolved, err := d.Transform.ApplyTable(d.Colors)
	if err != nil {
		return fmt.Errorf("variant %s: %w", d.Name, err)
	}

	palette := &palettes.Palette{Name: d.Palette, Colors: resolved}
	entries := make([]previewColor, 0, len(resolved))
	for _, key := range palette.Keys() {
		entries = append(entries, previewColor{Key: key, Base: d.Colors[key], Value: resolved[key]})
	}

	if IsJSONOutput() {
		return writeJSON(out, entries)
	}

	styles := BuildStyles(palette)
	if !swatches {
		fmt.Fprintf(out, "%s (%s, %s)\n", d.Name, d.Palette, d.Transform)
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Key, e.Value, e.Base})
		}
		return writeTable(out, []string{"KEY", "VALUE", "BASE"}, rows)
	}

	fmt.Fprintln(out, styles.Title.Render(d.Name)+" "+styles.Muted.Render(fmt.Sprintf("(%s, %s)", d.Palette, d.Transform)))
	for _, e := range entries {
		line := fmt.Sprintf("%s %s %s", swatch(e.Value), styles.Text.Render(fmt.Sprintf("%-14s", e.Key)), styles.Accent.Render(e.Value))
		if e.Value != e.Base {
			line += " " + styles.Muted.Render("from "+e.Base)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
