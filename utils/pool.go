// Package utils holds small helpers shared by the generator packages.
package utils

import (
	"bytes"
	"sync"
)

// Pool is a typed sync.Pool, values are reset on Put.
type Pool[T any] struct {
	p     sync.Pool
	reset func(T) (T, bool)
}

// NewPool creates a pool. reset prepares a value for reuse and reports false to drop it.
func NewPool[T any](ctor func() T, reset func(T) (T, bool)) *Pool[T] {
	return &Pool[T]{p: sync.Pool{New: func() any { return ctor() }}, reset: reset}
}

func (p *Pool[T]) Get() T {
	return p.p.Get().(T)
}

func (p *Pool[T]) Put(t T) {
	if v, ok := p.reset(t); ok {
		p.p.Put(v)
	}
}

// MaxPooledBuffer is the capacity above which a released buffer is left to the GC.
const MaxPooledBuffer = 1 << 16

// NewBufferPool pools the buffers generated sources are rendered into.
func NewBufferPool() *Pool[*bytes.Buffer] {
	return NewPool(func() *bytes.Buffer {
		return new(bytes.Buffer)
	}, func(b *bytes.Buffer) (*bytes.Buffer, bool) {
		if b.Cap() > MaxPooledBuffer {
			return nil, false
		}
		b.Reset()
		return b, true
	})
}
