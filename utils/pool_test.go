package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool(t *testing.T) {
	p := NewBufferPool()
	b := p.Get()
	b.WriteString("package example")
	p.Put(b)
	assert.Zero(t, b.Len())
	assert.NotNil(t, p.Get())

	large := bytes.NewBuffer(make([]byte, 0, MaxPooledBuffer+1))
	large.WriteString("kept")
	p.Put(large)
	assert.Equal(t, "kept", large.String())
}

func TestPoolDrop(t *testing.T) {
	created := 0
	p := NewPool(func() int {
		created++
		return created
	}, func(v int) (int, bool) {
		return 0, false
	})
	assert.Equal(t, 1, p.Get())
	p.Put(1)
	assert.Equal(t, 2, p.Get())
}
