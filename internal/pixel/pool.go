package pixel

import "sync"

// Pool is a thread-safe pool of byte buffers grouped by exact length.
//
// Texture readbacks of the same size reuse one staging buffer instead of
// allocating per frame. Buffers are not cleared: every user overwrites the
// whole slice before reading it.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPool creates a pool retaining at most maxPerBucket buffers of each
// length. A maxPerBucket of 0 or less means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a buffer of exactly n bytes, reused when one is available.
func (p *Pool) Get(n int) []byte {
	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n)
}

// Put returns buf to the pool. Nil buffers and buffers beyond the bucket
// limit are dropped.
func (p *Pool) Put(buf []byte) {
	if buf == nil {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf)
}

// Len returns the number of pooled buffers of length n.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}
