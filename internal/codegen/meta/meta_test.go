package meta_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/accessorgen/internal/codegen/common"
	"github.com/Alia5/accessorgen/internal/codegen/descriptor"
	"github.com/Alia5/accessorgen/internal/codegen/generator/cpp"
	"github.com/Alia5/accessorgen/internal/codegen/meta"
)

func TestBuildEndToEnd(t *testing.T) {
	profile := descriptor.NewProfile("My Profile", []descriptor.Property{
		{Identifier: "temperature", Type: descriptor.Primitive{Kind: descriptor.Double}},
	})
	headerPath, err := common.StripBuildRoot(filepath.FromSlash("/work/bin/output/my_profile.h"), "bin")
	require.NoError(t, err)

	rc := meta.Build([]descriptor.Profile{profile}, headerPath)

	require.Len(t, rc.Profiles, 1)
	assert.Equal(t, "MyProfile", rc.Profiles[0].SanitizedName)
	assert.Equal(t, filepath.FromSlash("output/my_profile.h"), rc.HeaderPath)

	require.Len(t, rc.Profiles[0].Properties, 1)
	prop := rc.Profiles[0].Properties[0]
	assert.Equal(t, "temperature", prop.Identifier)
	typ, err := cpp.ResolveType(prop.Type)
	require.NoError(t, err)
	assert.Equal(t, "double", typ)
}

func TestBuildCopiesProfiles(t *testing.T) {
	profiles := []descriptor.Profile{descriptor.NewProfile("A", nil), descriptor.NewProfile("B", nil)}

	rc := meta.Build(profiles, "a.h")
	profiles[0] = descriptor.NewProfile("Changed", nil)

	require.Len(t, rc.Profiles, 2)
	assert.Equal(t, "A", rc.Profiles[0].Name)
	assert.Equal(t, "B", rc.Profiles[1].Name)
}

func TestBuildAllowsNoProfiles(t *testing.T) {
	rc := meta.Build(nil, "a.h")
	assert.Empty(t, rc.Profiles)
	assert.Equal(t, "a.h", rc.HeaderPath)
}

func TestBuildWithProvenance(t *testing.T) {
	p := common.Provenance{Version: "1.0.0", Major: 1, SourceDigest: "abc"}
	rc := meta.Build(nil, "a.h", meta.WithProvenance(p))
	assert.Equal(t, p, rc.Provenance)
}

func TestProfilesResolveIndependently(t *testing.T) {
	a := descriptor.NewProfile("A", []descriptor.Property{{Identifier: "value", Type: descriptor.Primitive{Kind: descriptor.Int64}}})
	b := descriptor.NewProfile("B", []descriptor.Property{{Identifier: "value", Type: descriptor.Primitive{Kind: descriptor.String}}})
	rc := meta.Build([]descriptor.Profile{a, b}, "ab.h")

	ta, err := cpp.ResolveType(rc.Profiles[0].Properties[0].Type)
	require.NoError(t, err)
	tb, err := cpp.ResolveType(rc.Profiles[1].Properties[0].Type)
	require.NoError(t, err)

	assert.Equal(t, "int64_t", ta)
	assert.Equal(t, "std::string", tb)
	assert.NotEqual(t, ta, tb)
}
