package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oh-lucy/themegen/internal/builder"
	"github.com/oh-lucy/themegen/internal/config"
	"github.com/oh-lucy/themegen/internal/variants"
)

// builtMessage is printed once every variant has been written.
const builtMessage = "🌺 Theme built. 💅"

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build [variant...]",
	Short: "Build theme files",
	Long: `Build one JSON theme file per variant into the output directory.

With no arguments every registered variant is built. Named variants must exist;
an unknown name fails before anything is written.

Examples:
  themegen build
  themegen build oh-lucy oh-lucy-evening
  themegen build --output themes --indent "  "`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd.Context(), cmd.OutOrStdout(), GetConfig(), args)
	},
}

func runBuild(ctx context.Context, out io.Writer, cfg *config.Config, names []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	prog := newProgress()

	step := prog.Start("Loading variants")
	reg, err := variants.Load(cfg.ProjectDir)
	if err != nil {
		step.Fail()
		return err
	}
	descs, err := reg.Select(names...)
	if err != nil {
		step.Fail()
		return err
	}
	step.Done(fmt.Sprintf("%d selected", len(descs)))

	step = prog.Start("Building themes")
	b := builder.New(builder.Options{
		OutputDir:       cfg.OutputDir,
		CreateOutputDir: cfg.CreateOutputDir,
		Indent:          cfg.Indent,
		Jobs:            cfg.Jobs,
	})
	result, err := b.Build(ctx, descs)
	if err != nil {
		step.Fail()
		return err
	}
	step.Done(fmt.Sprintf("wrote %d files to %s", len(result.Artifacts), cfg.OutputDir))

	if IsJSONOutput() {
		return writeJSON(out, result)
	}

	fmt.Fprintln(out, builtMessage)
	return nil
}
