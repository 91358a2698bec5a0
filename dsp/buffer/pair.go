package buffer

// Pair owns two equally provisioned buffers and flips them each frame:
// the front holds the values the caller currently sees, the back receives
// the next computation, and Swap transfers ownership without copying.
// This replaces raw-pointer swapping with an explicit owned-buffer pair
// while keeping the zero-allocation-per-frame property.
type Pair struct {
	front *Buffer
	back  *Buffer
}

// NewPair returns a Pair whose buffers can each hold capacity samples
// without reallocating. Both start with length 0.
func NewPair(capacity int) *Pair {
	if capacity < 0 {
		capacity = 0
	}
	return &Pair{
		front: NewWithCapacity(0, capacity),
		back:  NewWithCapacity(0, capacity),
	}
}

// Front returns the caller-visible buffer.
func (p *Pair) Front() *Buffer {
	return p.front
}

// Back returns the buffer the next frame is computed into.
func (p *Pair) Back() *Buffer {
	return p.back
}

// Swap exchanges front and back.
func (p *Pair) Swap() {
	p.front, p.back = p.back, p.front
}
