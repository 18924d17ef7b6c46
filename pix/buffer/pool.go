package buffer

import "sync"

// Pool provides sync.Pool-based reuse of float64 scratch planes to reduce
// GC pressure when filters run repeatedly.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				s := make([]float64, 0)
				return &s
			},
		},
	}
}

// Scratch is the package-level pool used by the filters.
var Scratch = NewPool()

// Get returns a zeroed slice of length n.
// Callers must return it via Put when done.
func (p *Pool) Get(n int) []float64 {
	sp := p.pool.Get().(*[]float64)
	s := *sp
	if cap(s) < n {
		s = make([]float64, n)
	} else {
		s = s[:n]
		clear(s)
	}
	return s
}

// Put returns a slice to the pool for reuse.
// The caller must not use the slice after calling Put.
func (p *Pool) Put(s []float64) {
	if s == nil {
		return
	}
	s = s[:0]
	p.pool.Put(&s)
}
