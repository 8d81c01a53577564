package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Emitter writes rendered units to their output paths.
type Emitter struct {
	fs afero.Fs
}

func NewEmitter(fs afero.Fs) *Emitter {
	return &Emitter{fs: fs}
}

// Emit writes text to path, creating parent directories. The file is closed on every path.
func (e *Emitter) Emit(path, text string) (err error) {
	if err := e.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := e.fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, text); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
