package player

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/slide/slide"
)

// Record is the result of a single simulated tick.
type Record struct {
	Tick     uint64
	Position mgl64.Vec3
	Result   slide.TickResult
}

// History is a fixed-size circular buffer of the most recent tick records.
type History struct {
	buffer   []Record
	capacity int
	head     int // next write position
	size     int
}

// NewHistory creates a history holding at most capacity records. A capacity below one is
// raised to one.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		buffer:   make([]Record, capacity),
		capacity: capacity,
	}
}

// Add inserts a record, overwriting the oldest one when full.
func (h *History) Add(r Record) {
	h.buffer[h.head] = r
	h.head = (h.head + 1) % h.capacity
	if h.size < h.capacity {
		h.size++
	}
}

// Records returns every record, oldest first.
func (h *History) Records() []Record {
	result := make([]Record, 0, h.size)
	for i := h.size - 1; i >= 0; i-- {
		result = append(result, h.at(i))
	}
	return result
}

// Latest returns the most recently added record.
func (h *History) Latest() (Record, bool) {
	if h.size == 0 {
		return Record{}, false
	}
	return h.at(0), true
}

// Len returns the current number of records.
func (h *History) Len() int {
	return h.size
}

// Clear removes all records.
func (h *History) Clear() {
	h.head = 0
	h.size = 0
}

// at returns the i-th most recent record.
func (h *History) at(i int) Record {
	return h.buffer[(h.head-1-i+h.capacity)%h.capacity]
}
