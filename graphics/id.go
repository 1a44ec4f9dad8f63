package graphics

import (
	"strconv"
	"sync/atomic"
)

// GraphicsID identifies one drawable owned by a RendererPool
// The zero value is never issued and is absent from every pool
type GraphicsID struct {
	seq uint64
}

// idSequence is the process-wide id counter. It starts at zero and is never reset;
// the first issued id carries sequence 1
var idSequence atomic.Uint64

// GenerateID returns a process-unique GraphicsID
func GenerateID() GraphicsID {
	return GraphicsID{seq: idSequence.Add(1)}
}

// IsZero reports whether id is the zero value
func (id GraphicsID) IsZero() bool {
	return id.seq == 0
}

// String formats the id for logs
func (id GraphicsID) String() string {
	return "gfx#" + strconv.FormatUint(id.seq, 10)
}
