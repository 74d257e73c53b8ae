// Package cli implements the themegen command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oh-lucy/themegen/internal/config"
	"github.com/oh-lucy/themegen/internal/logging"
)

var (
	cfgFile    string
	jsonOutput bool
	noProgress bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "themegen",
	Short: "Build editor color themes from palettes",
	Long: `themegen renders every palette through its theme template, once per color
transform, and writes one JSON theme file per variant.

Run without a subcommand to build every variant.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd.Context(), cmd.OutOrStdout(), GetConfig(), nil)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./themegen.yaml or $XDG_CONFIG_HOME/themegen/config.yaml)")
	flags.StringP("output", "o", "", "output directory for theme files (default dist)")
	flags.String("project", "", "project directory searched for .themegen/palettes and .themegen/templates")
	flags.Int("jobs", 0, "maximum variants built concurrently (0 = unlimited)")
	flags.String("indent", "", "JSON indent string (default compact)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: console or json")
	flags.BoolVar(&jsonOutput, "json", false, "machine-readable JSON output")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"output":     "output_dir",
	"project":    "project_dir",
	"jobs":       "jobs",
	"indent":     "indent",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

func initConfig(cmd *cobra.Command) error {
	v := viper.New()
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: logging.Format(cfg.Logging.Format),
	}); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}
