package log

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps raw input bytes, e.g. a descriptor that fails to decode.
type RawLogger interface {
	Log(source string, data []byte)
}

type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If w is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log writes a timestamped header line followed by a canonical hex dump of data.
func (r *rawLogger) Log(source string, data []byte) {
	if r.w == nil || len(data) == 0 {
		return
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s: %d bytes\n", time.Now().Format("2006/01/02 15:04:05"), source, len(data))
	buf.WriteString(hex.Dump(data))

	r.mu.Lock()
	_, _ = r.w.Write(buf.Bytes())
	r.mu.Unlock()
}
