package generator

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/Alia5/accessorgen/internal/codegen/common"
	"github.com/Alia5/accessorgen/internal/codegen/descriptor"
	"github.com/Alia5/accessorgen/internal/codegen/generator/cpp"
	"github.com/Alia5/accessorgen/internal/codegen/meta"
	"github.com/Alia5/accessorgen/internal/log"
)

// Options describes one generation run.
type Options struct {
	DescriptorPath string
	Format         descriptor.Format // empty: detect from DescriptorPath
	HeaderPath     string
	SourcePath     string
	BuildRoot      string // empty: common.DefaultBuildRoot
	TemplateDir    string // optional directory of *.tmpl overrides
}

type Generator struct {
	fs        afero.Fs
	logger    *slog.Logger
	rawLogger log.RawLogger
}

func New(fs afero.Fs, logger *slog.Logger, rawLogger log.RawLogger) *Generator {
	if rawLogger == nil {
		rawLogger = log.NewRaw(nil)
	}
	return &Generator{
		fs:        fs,
		logger:    logger,
		rawLogger: rawLogger,
	}
}

// Run reads the descriptor, renders the source and header units and writes them.
// The source is written before the header is rendered; a failure leaves earlier output in place.
func (g *Generator) Run(opts Options) error {
	format := opts.Format
	if format == "" {
		format = descriptor.FormatFromPath(opts.DescriptorPath)
	}
	buildRoot := opts.BuildRoot
	if buildRoot == "" {
		buildRoot = common.DefaultBuildRoot
	}

	g.logger.Info("Generating accessors", "descriptor", opts.DescriptorPath, "format", format)

	data, err := afero.ReadFile(g.fs, opts.DescriptorPath)
	if err != nil {
		return fmt.Errorf("read descriptor: %w", err)
	}
	g.rawLogger.Log(opts.DescriptorPath, data)

	profile, err := descriptor.Decode(data, format)
	if err != nil {
		return err
	}
	g.logger.Debug("Decoded profile", "profile", profile.Name, "properties", len(profile.Properties))

	includePath, err := common.StripBuildRoot(opts.HeaderPath, buildRoot)
	if err != nil {
		return err
	}

	provenance, err := common.NewProvenance(data)
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}

	rc := meta.Build([]descriptor.Profile{profile}, includePath, meta.WithProvenance(provenance))

	renderer, err := cpp.NewTemplateRenderer(g.fs, opts.TemplateDir)
	if err != nil {
		return err
	}

	emitter := NewEmitter(g.fs)
	units := []struct {
		template string
		path     string
	}{
		{template: cpp.SourceTemplate, path: opts.SourcePath},
		{template: cpp.HeaderTemplate, path: opts.HeaderPath},
	}
	for _, u := range units {
		text, err := renderer.Render(u.template, rc)
		if err != nil {
			return err
		}
		if err := emitter.Emit(u.path, text); err != nil {
			return err
		}
		g.logger.Info("Generated "+u.template, "file", u.path)
	}

	g.logger.Info("Accessor generation complete", "profile", profile.SanitizedName, "include", includePath)
	return nil
}
