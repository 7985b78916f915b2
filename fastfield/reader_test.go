package fastfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReader_Get(t *testing.T) {
	r := FromValues([]uint8{10, 4})

	assert.Equal(t, uint8(10), r.Get(0))
	assert.Equal(t, uint8(4), r.Get(1))
	assert.Equal(t, uint32(2), r.NumDocs())
}

func TestReader_OutOfRange(t *testing.T) {
	r := FromValues([]uint8{10, 4})

	assert.Panics(t, func() { r.Get(2) })
}
