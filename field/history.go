package field

import (
	"fmt"

	"github.com/colinrgodsey/wave-daemon/physics"
)

// Point is one entry of an observation history.
type Point struct {
	Time  float64 `json:"t"`
	Value float64 `json:"v"`
}

// History is a fixed-size rolling window of the field seen at one position.
// Once full, each Push drops the oldest point. Not safe for concurrent use.
type History struct {
	points []Point
	next   int
	total  uint64
}

// NewHistory creates a History keeping the latest size points.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{points: make([]Point, size)}
}

// Push records a point.
func (h *History) Push(time, value float64) {
	h.points[h.next] = Point{time, value}
	h.next = (h.next + 1) % len(h.points)
	h.total++
}

// Len returns the number of points currently held.
func (h *History) Len() int {
	if h.total < uint64(len(h.points)) {
		return int(h.total)
	}
	return len(h.points)
}

// Cap returns the window size.
func (h *History) Cap() int {
	return len(h.points)
}

// Total returns the number of points ever pushed.
func (h *History) Total() uint64 {
	return h.total
}

// Points returns the held points, oldest first.
func (h *History) Points() []Point {
	n := h.Len()
	out := make([]Point, 0, n)
	start := h.next - n
	if start < 0 {
		start += len(h.points)
	}
	for i := 0; i < n; i++ {
		out = append(out, h.points[(start+i)%len(h.points)])
	}
	return out
}

// Reset drops every point.
func (h *History) Reset() {
	h.next = 0
	h.total = 0
}

// ObservationSeries returns n past values of a traveling wave at position x,
// newest first, stepping back dt per entry from time.
func ObservationSeries(t Traveling, x, time, dt float64, n int) ([]Point, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if n < 1 || !(dt > 0) {
		return nil, fmt.Errorf("%w: %v points every %v", physics.ErrInvalidConfig, n, dt)
	}
	out := make([]Point, n)
	for i := range out {
		past := time - float64(i)*dt
		out[i] = Point{past, t.At(x, past)}
	}
	return out, nil
}
