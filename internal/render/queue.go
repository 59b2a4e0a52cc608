package render

import (
	"image"
	"sort"
)

// Drawable is anything with pixel bounds that a Canvas can blit.
// *ebiten.Image and image.Image both satisfy it.
type Drawable interface {
	Bounds() image.Rectangle
}

// Entry is one draw descriptor: an image blitted at (X, Y) scaled to W x H.
// Depth orders entries for the painter's algorithm; larger is farther.
type Entry struct {
	Depth float64
	Image Drawable
	X, Y  float64
	W, H  float64
}

// Queue collects the draw descriptors of a single frame.
// It never carries entries across frames: the compositor resets it after drawing.
type Queue struct {
	entries []Entry
}

// NewQueue returns an empty queue with room for capacity entries.
func NewQueue(capacity int) *Queue {
	return &Queue{entries: make([]Entry, 0, capacity)}
}

// Push appends e in insertion order.
func (q *Queue) Push(e Entry) {
	q.entries = append(q.entries, e)
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Entries returns the queued entries. The slice is only valid until the next Reset.
func (q *Queue) Entries() []Entry {
	return q.entries
}

// Reset empties the queue, keeping its capacity for the next frame.
func (q *Queue) Reset() {
	clear(q.entries)
	q.entries = q.entries[:0]
}

// SortFarToNear orders entries by depth descending. Equal depths keep their
// insertion order.
func (q *Queue) SortFarToNear() {
	sort.SliceStable(q.entries, func(i, j int) bool {
		return q.entries[i].Depth > q.entries[j].Depth
	})
}
