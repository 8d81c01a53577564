// Package meta assembles the data handed to template rendering for one generation run.
package meta

import (
	"github.com/Alia5/accessorgen/internal/codegen/common"
	"github.com/Alia5/accessorgen/internal/codegen/descriptor"
)

// RenderContext holds everything the accessor templates may reference.
// It is built once per run, shared by the header and source renders, and never mutated.
type RenderContext struct {
	Profiles   []descriptor.Profile
	HeaderPath string // build-root relative path of the generated header, used in #include
	Provenance common.Provenance
}

// Option customizes a RenderContext during Build.
type Option func(*RenderContext)

// WithProvenance records the generator version and descriptor digest.
func WithProvenance(p common.Provenance) Option {
	return func(rc *RenderContext) { rc.Provenance = p }
}

// Build assembles a RenderContext. The profile slice is copied.
func Build(profiles []descriptor.Profile, headerPath string, opts ...Option) RenderContext {
	rc := RenderContext{
		Profiles:   append([]descriptor.Profile(nil), profiles...),
		HeaderPath: headerPath,
	}
	for _, opt := range opts {
		opt(&rc)
	}
	return rc
}
