package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/accessorgen/internal/codegen/common"
)

func TestSplitVersion(t *testing.T) {
	tests := []struct {
		in                  string
		major, minor, patch int
	}{
		{in: "1.2.3", major: 1, minor: 2, patch: 3},
		{in: "1.2.3-dirty", major: 1, minor: 2, patch: 3},
		{in: "0.4", major: 0, minor: 4, patch: 0},
		{in: "2", major: 2},
		{in: "", major: 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			major, minor, patch := common.SplitVersion(tc.in)
			assert.Equal(t, []int{tc.major, tc.minor, tc.patch}, []int{major, minor, patch})
		})
	}
}

func TestGeneratorVersion(t *testing.T) {
	orig := common.Version
	t.Cleanup(func() { common.Version = orig })

	common.Version = ""
	v, err := common.GeneratorVersion()
	require.NoError(t, err)
	assert.Equal(t, "0.0.1-dev", v)

	common.Version = "v1.4.0-3-gabcdef"
	v, err = common.GeneratorVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.4.0-3-gabcdef", v)

	common.Version = "nightly"
	_, err = common.GeneratorVersion()
	assert.Error(t, err)
}

func TestNewProvenance(t *testing.T) {
	orig := common.Version
	t.Cleanup(func() { common.Version = orig })
	common.Version = "2.5.1"

	p, err := common.NewProvenance([]byte("profile"))
	require.NoError(t, err)
	assert.Equal(t, "2.5.1", p.Version)
	assert.Equal(t, 2, p.Major)
	assert.Equal(t, 5, p.Minor)
	assert.Equal(t, 1, p.Patch)
	assert.Len(t, p.SourceDigest, 64)
	assert.Equal(t, common.SourceDigest([]byte("profile")), p.SourceDigest)
	assert.NotEqual(t, common.SourceDigest([]byte("other")), p.SourceDigest)
}
