package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripBuildRootWindowsSeparator(t *testing.T) {
	got, err := stripBuildRoot(`C:\work\bin\lib\foo.h`, "bin", `\`)
	assert.NoError(t, err)
	assert.Equal(t, `lib\foo.h`, got)
}
