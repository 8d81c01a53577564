package cmd

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/Alia5/accessorgen/internal/codegen/common"
	"github.com/Alia5/accessorgen/internal/codegen/descriptor"
	"github.com/Alia5/accessorgen/internal/codegen/generator"
	"github.com/Alia5/accessorgen/internal/log"
)

type Generate struct {
	ProtoPathIn string `name:"proto-path-in" help:"Path of the serialized profile descriptor" required:"" type:"path" env:"ACCESSORGEN_PROTO_PATH_IN"`
	HPath       string `name:"h-path" help:"Path of the generated .h file (must be under the build root)" required:"" type:"path" env:"ACCESSORGEN_H_PATH"`
	CcPath      string `name:"cc-path" help:"Path of the generated .cc file" required:"" type:"path" env:"ACCESSORGEN_CC_PATH"`
	InputFormat string `name:"input-format" help:"Descriptor format; auto picks it from the file extension" default:"auto" enum:"auto,binary,json,text,yaml,toml" env:"ACCESSORGEN_INPUT_FORMAT"`
	BuildRoot   string `name:"build-root" help:"Path segment the #include path of the header is relative to" default:"bin" env:"ACCESSORGEN_BUILD_ROOT"`
	TemplateDir string `name:"template-dir" help:"Directory of *.tmpl files overriding the built-in templates" type:"path" env:"ACCESSORGEN_TEMPLATE_DIR"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger, rawLogger log.RawLogger, fs afero.Fs) error {
	format, err := descriptor.ParseFormat(g.InputFormat)
	if err != nil {
		return err
	}
	buildRoot := g.BuildRoot
	if buildRoot == "" {
		buildRoot = common.DefaultBuildRoot
	}

	gen := generator.New(fs, logger, rawLogger)
	return gen.Run(generator.Options{
		DescriptorPath: g.ProtoPathIn,
		Format:         format,
		HeaderPath:     g.HPath,
		SourcePath:     g.CcPath,
		BuildRoot:      buildRoot,
		TemplateDir:    g.TemplateDir,
	})
}
