package nav

import "github.com/zyedidia/generic/mapset"

// Occupancy is the set of cells held by live agents this frame.
// It is rebuilt from scratch every frame before any path query.
type Occupancy struct {
	cells mapset.Set[Cell]
}

// NewOccupancy returns an occupancy set holding cells.
func NewOccupancy(cells ...Cell) *Occupancy {
	o := &Occupancy{cells: mapset.New[Cell]()}
	for _, c := range cells {
		o.cells.Put(c)
	}
	return o
}

// Reset discards the previous frame's cells and records cells instead.
func (o *Occupancy) Reset(cells ...Cell) {
	o.cells.Clear()
	for _, c := range cells {
		o.cells.Put(c)
	}
}

// Add marks c as occupied.
func (o *Occupancy) Add(c Cell) {
	o.cells.Put(c)
}

// Has reports whether c is occupied. A nil set is empty.
func (o *Occupancy) Has(c Cell) bool {
	if o == nil {
		return false
	}
	return o.cells.Has(c)
}

// Len returns the number of occupied cells.
func (o *Occupancy) Len() int {
	if o == nil {
		return 0
	}
	return o.cells.Size()
}
