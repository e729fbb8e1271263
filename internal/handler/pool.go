package handler

import (
	"bytes"
	"sync"
)

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding.
// Snapshot polling hits the same small responses every tick.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
