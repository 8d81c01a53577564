package cpp

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/afero"

	"github.com/Alia5/accessorgen/internal/codegen/meta"
)

const (
	HeaderTemplate = "accessors.h.tmpl"
	SourceTemplate = "accessors.cc.tmpl"

	templateExt = ".tmpl"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Renderer produces text for a named template from a render context.
type Renderer interface {
	Render(name string, rc meta.RenderContext) (string, error)
}

// RenderError reports a template that could not be found, parsed or executed.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// TemplateRenderer renders accessor templates with text/template.
// Referencing an undefined field or map key fails the render.
type TemplateRenderer struct {
	root *template.Template
}

// NewTemplateRenderer parses the built-in templates. When overrideDir is not empty,
// every *.tmpl file in it (read through fsys) replaces or adds a template of the same name.
func NewTemplateRenderer(fsys afero.Fs, overrideDir string) (*TemplateRenderer, error) {
	root := template.New("accessors").Option("missingkey=error").Funcs(tplFuncs())

	entries, err := embeddedTemplates.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read built-in templates: %w", err)
	}
	for _, entry := range entries {
		text, err := embeddedTemplates.ReadFile(path.Join("templates", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read built-in template %s: %w", entry.Name(), err)
		}
		if _, err := root.New(entry.Name()).Parse(string(text)); err != nil {
			return nil, &RenderError{Template: entry.Name(), Err: err}
		}
	}

	if overrideDir != "" {
		if err := parseOverrides(root, fsys, overrideDir); err != nil {
			return nil, err
		}
	}
	return &TemplateRenderer{root: root}, nil
}

func parseOverrides(root *template.Template, fsys afero.Fs, dir string) error {
	if fsys == nil {
		return errors.New("template override directory given without a filesystem")
	}
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read template directory %s: %w", dir, err)
	}
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), templateExt) {
			continue
		}
		text, err := afero.ReadFile(fsys, filepath.Join(dir, info.Name()))
		if err != nil {
			return fmt.Errorf("read template %s: %w", info.Name(), err)
		}
		if _, err := root.New(info.Name()).Parse(string(text)); err != nil {
			return &RenderError{Template: info.Name(), Err: err}
		}
	}
	return nil
}

// Render executes the named template against rc.
func (r *TemplateRenderer) Render(name string, rc meta.RenderContext) (string, error) {
	t := r.root.Lookup(name)
	if t == nil || !strings.HasSuffix(name, templateExt) {
		return "", &RenderError{Template: name, Err: errors.New("template not defined")}
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, rc); err != nil {
		return "", &RenderError{Template: name, Err: err}
	}
	return buf.String(), nil
}
