package fastfield

import (
	"fmt"

	"github.com/hupe1980/lexgo/model"
)

// Reader provides random access to one per-document 8-bit value, indexed by
// segment-local document id.
type Reader struct {
	values []uint8
}

// FromValues creates a Reader over the given values. The value for DocID d
// is values[d].
func FromValues(values []uint8) *Reader {
	return &Reader{values: values}
}

// Get returns the value stored for doc.
//
// It panics when doc is out of range: an iterator reporting a document id
// the backing storage does not know is a consistency fault between index
// structures, not a recoverable condition.
func (r *Reader) Get(doc model.DocID) uint8 {
	if int(doc) >= len(r.values) {
		panic(fmt.Sprintf("fastfield: doc %d out of range (%d values)", doc, len(r.values)))
	}
	return r.values[doc]
}

// NumDocs returns the number of documents covered by the reader.
func (r *Reader) NumDocs() uint32 {
	return uint32(len(r.values))
}
