// Package builder renders theme variants to JSON files.
package builder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/oh-lucy/themegen/internal/logging"
	"github.com/oh-lucy/themegen/internal/templates"
	"github.com/oh-lucy/themegen/internal/variants"
)

// Options configure a Builder.
type Options struct {
	// OutputDir receives <variant>.json files.
	OutputDir string

	// CreateOutputDir creates OutputDir before any variant is built.
	CreateOutputDir bool

	// Indent is passed to the JSON encoder. Empty writes compact JSON.
	Indent string

	// Jobs limits concurrent variant builds. Zero or less means no limit.
	Jobs int

	// Fs is the output filesystem. Defaults to the OS filesystem.
	Fs afero.Fs
}

// Artifact describes one written theme file.
type Artifact struct {
	Variant string            `json:"variant"`
	Path    string            `json:"path"`
	Bytes   int               `json:"bytes"`
	Colors  map[string]string `json:"colors"`
}

// Result summarizes a successful build.
type Result struct {
	BuildID   string        `json:"build_id"`
	Artifacts []Artifact    `json:"artifacts"`
	Duration  time.Duration `json:"duration"`
}

// Builder turns variant descriptors into theme files.
type Builder struct {
	opts   Options
	fs     afero.Fs
	logger zerolog.Logger
}

// New creates a Builder.
func New(opts Options) *Builder {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Builder{
		opts:   opts,
		fs:     fs,
		logger: logging.Component("builder"),
	}
}

// Build renders and writes every descriptor concurrently. It waits for all
// started variants and returns every failure joined in descriptor order; the
// Result is nil unless all variants were written.
func (b *Builder) Build(ctx context.Context, descs []variants.Descriptor) (*Result, error) {
	started := time.Now()
	buildID := uuid.New().String()
	logger := b.logger.With().Str("build_id", buildID).Logger()

	if b.opts.CreateOutputDir {
		if err := b.fs.MkdirAll(b.opts.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create output dir %s: %w", ErrWrite, b.opts.OutputDir, err)
		}
	}

	artifacts := make([]Artifact, len(descs))
	errs := make([]error, len(descs))

	var g errgroup.Group
	if b.opts.Jobs > 0 {
		g.SetLimit(b.opts.Jobs)
	}
	for i, d := range descs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = fmt.Errorf("variant %s: %w", d.Name, err)
				return nil
			}
			artifact, err := b.buildOne(d)
			if err != nil {
				logger.Warn().Err(err).Str("variant", d.Name).Msg("variant failed")
				errs[i] = err
				return nil
			}
			logger.Debug().
				Str("variant", d.Name).
				Str("palette", d.Palette).
				Str("transform", string(d.Transform)).
				Str("path", artifact.Path).
				Int("bytes", artifact.Bytes).
				Msg("variant written")
			artifacts[i] = artifact
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	result := &Result{
		BuildID:   buildID,
		Artifacts: artifacts,
		Duration:  time.Since(started),
	}
	logger.Info().
		Int("variants", len(artifacts)).
		Str("output_dir", b.opts.OutputDir).
		Dur("duration", result.Duration).
		Msg("theme build complete")
	return result, nil
}

func (b *Builder) buildOne(d variants.Descriptor) (Artifact, error) {
	fail := func(stage Stage, err error) (Artifact, error) {
		return Artifact{}, &VariantError{Variant: d.Name, Stage: stage, Err: err}
	}

	colors, err := d.Transform.ApplyTable(d.Colors)
	if err != nil {
		return fail(StageTransform, err)
	}

	doc, err := templates.Render(d.ThemeTemplate, d.Name, colors)
	if err != nil {
		return fail(StageTemplate, err)
	}

	data, err := b.encode(doc)
	if err != nil {
		return fail(StageSerialize, err)
	}

	path := OutputPath(b.opts.OutputDir, d.Name)
	if err := afero.WriteFile(b.fs, path, data, 0o644); err != nil {
		return fail(StageWrite, err)
	}

	return Artifact{
		Variant: d.Name,
		Path:    path,
		Bytes:   len(data),
		Colors:  colors,
	}, nil
}

func (b *Builder) encode(doc templates.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if b.opts.Indent != "" {
		enc.SetIndent("", b.opts.Indent)
	}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// OutputPath is the file a variant is written to.
func OutputPath(dir, variant string) string {
	return filepath.Join(dir, variant+".json")
}
