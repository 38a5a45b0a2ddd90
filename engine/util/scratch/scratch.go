package scratch

import "sync"

// DefaultBufSize is the capacity of newly minted buffers when the pool was built
// without an explicit size.
const DefaultBufSize = 64

// Pool lends byte buffers, typically for building row-store keys. A transaction
// borrows a buffer with Get, fills it, and hands the bytes to the write set; the
// records only read through the borrowed reference. The buffer goes back with Put
// once the write set has resolved, never earlier.
//
// A single Pool may be shared between threads; the freelist is guarded.
type Pool struct {
	mu      sync.Mutex
	free    [][]byte
	bufSize int
}

// NewPool creates a pool whose fresh buffers have capacity bufSize. A non-positive
// size falls back to DefaultBufSize.
func NewPool(bufSize int) *Pool {
	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}
	return &Pool{bufSize: bufSize}
}

// Get returns a zero-length buffer with capacity at least n, reusing a pooled buffer
// when one is big enough.
func (p *Pool) Get(n int) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := len(p.free) - 1; i >= 0; i-- {
		if cap(p.free[i]) >= n {
			buf := p.free[i]
			p.free = append(p.free[:i], p.free[i+1:]...)
			return buf[:0]
		}
	}

	if n < p.bufSize {
		n = p.bufSize
	}
	return make([]byte, 0, n)
}

// Put returns a buffer to the pool. The caller must not touch the buffer afterwards,
// and must not return it while any modification record still references it.
func (p *Pool) Put(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, buf[:0])
}

// Idle returns the number of buffers currently pooled.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
