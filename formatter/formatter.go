package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/daylog/config"
	"github.com/philipp01105/daylog/core"
)

// Formatter defines the interface for line formatters
type Formatter interface {
	// Format renders rec under cfg into a newly allocated line
	Format(cfg config.Config, rec *core.Record) []byte
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord appends the rendered line to buf.
	FormatRecord(cfg config.Config, rec *core.Record, buf *bytes.Buffer)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(512)
		return b
	},
}

// GetBuffer returns an empty buffer from the shared pool
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the shared pool
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
