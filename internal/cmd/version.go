package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Alia5/accessorgen/internal/codegen/common"
)

type Version struct {
	out io.Writer
}

// Run prints the generator version stamped into generated files.
func (v *Version) Run() error {
	version, err := common.GeneratorVersion()
	if err != nil {
		return err
	}
	out := v.out
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintf(out, "accessorgen %s\n", version)
	return err
}
