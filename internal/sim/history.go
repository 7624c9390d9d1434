package sim

// History is a fixed-capacity ring of recent values.
type History struct {
	buf  []float64
	next int
	full bool
}

// NewHistory allocates a ring holding up to capacity values.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]float64, capacity)}
}

// Push appends v, evicting the oldest value when full.
func (h *History) Push(v float64) {
	h.buf[h.next] = v
	h.next = (h.next + 1) % len(h.buf)
	if h.next == 0 {
		h.full = true
	}
}

// Len returns the number of stored values.
func (h *History) Len() int {
	if h.full {
		return len(h.buf)
	}
	return h.next
}

// Values returns the stored values, oldest first.
func (h *History) Values() []float64 {
	if !h.full {
		return append([]float64(nil), h.buf[:h.next]...)
	}
	out := make([]float64, 0, len(h.buf))
	out = append(out, h.buf[h.next:]...)
	return append(out, h.buf[:h.next]...)
}

// Reset empties the ring.
func (h *History) Reset() {
	h.next = 0
	h.full = false
}
