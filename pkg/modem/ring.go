package modem

import "sync"

// RingBuffer is a fixed-capacity circular sample store shared between one
// producer (the audio callback) and one consumer (the decode step). The
// producer never blocks: when full, the oldest unconsumed samples are
// dropped, since stale audio is worthless for real-time decoding.
type RingBuffer struct {
	mu      sync.Mutex
	buf     []float64
	start   int
	size    int
	dropped uint64
}

func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{buf: make([]float64, capacity)}
}

func (r *RingBuffer) Write(samples []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	capacity := len(r.buf)
	if len(samples) >= capacity {
		r.dropped += uint64(r.size + len(samples) - capacity)
		samples = samples[len(samples)-capacity:]
		r.start = 0
		r.size = capacity
		copy(r.buf, samples)
		return
	}

	if overflow := r.size + len(samples) - capacity; overflow > 0 {
		r.start = (r.start + overflow) % capacity
		r.size -= overflow
		r.dropped += uint64(overflow)
	}

	end := (r.start + r.size) % capacity
	n := copy(r.buf[end:], samples)
	copy(r.buf, samples[n:])
	r.size += len(samples)
}

// Peek copies the next n samples without consuming them.
func (r *RingBuffer) Peek(n int) ([]float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size < n {
		return nil, false
	}
	out := make([]float64, n)
	m := copy(out, r.buf[r.start:min(r.start+n, len(r.buf))])
	copy(out[m:], r.buf)
	return out, true
}

// Discard consumes up to n samples and reports how many were dropped.
func (r *RingBuffer) Discard(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > r.size {
		n = r.size
	}
	r.start = (r.start + n) % len(r.buf)
	r.size -= n
	return n
}

func (r *RingBuffer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

func (r *RingBuffer) Cap() int {
	return len(r.buf)
}

// Dropped reports how many samples were lost to overflow since creation.
func (r *RingBuffer) Dropped() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

func (r *RingBuffer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.start = 0
	r.size = 0
}
