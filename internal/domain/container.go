package domain

import (
	"errors"
	"time"
)

// GridColumns is the fixed number of columns of the business grid.
const GridColumns = 2

// ErrNoBusinesses is returned when a container would be built empty.
var ErrNoBusinesses = errors.New("business container needs at least one business")

// BusinessContainer owns the businesses laid out on a two-column grid and
// the single selection index. Index i sits in column i%2, row i/2.
type BusinessContainer struct {
	X, Y       int
	businesses []Business
	selected   int
}

// Payout describes one completed cycle collected during a tick.
type Payout struct {
	Index  int
	Name   string
	Amount float64
}

// NewBusinessContainer builds a container at origin (x, y). The signature
// guarantees at least one business, so the selection is always valid.
func NewBusinessContainer(x, y int, first Business, rest ...Business) *BusinessContainer {
	businesses := make([]Business, 0, 1+len(rest))
	businesses = append(businesses, first)
	businesses = append(businesses, rest...)
	return &BusinessContainer{X: x, Y: y, businesses: businesses}
}

// ContainerFrom builds a container from a slice, failing on an empty one.
func ContainerFrom(x, y int, businesses []Business) (*BusinessContainer, error) {
	if len(businesses) == 0 {
		return nil, ErrNoBusinesses
	}
	return NewBusinessContainer(x, y, businesses[0], businesses[1:]...), nil
}

// Cell returns the grid column and row of index i.
func Cell(i int) (col, row int) {
	return i % GridColumns, i / GridColumns
}

// Len returns the number of businesses.
func (c *BusinessContainer) Len() int {
	return len(c.businesses)
}

// Selected returns the selected index.
func (c *BusinessContainer) Selected() int {
	return c.selected
}

// SelectedBusiness returns the selected business for in-place mutation.
func (c *BusinessContainer) SelectedBusiness() *Business {
	return &c.businesses[c.selected]
}

// At returns a copy of the business at index i.
func (c *BusinessContainer) At(i int) Business {
	return c.businesses[i]
}

// Businesses returns a copy of the businesses in grid order.
func (c *BusinessContainer) Businesses() []Business {
	out := make([]Business, len(c.businesses))
	copy(out, c.businesses)
	return out
}

// Select moves the selection one cell in direction d. Moves that would leave
// the grid, including onto the empty half of a short last row, are no-ops.
// It reports whether the selection changed.
func (c *BusinessContainer) Select(d Direction) bool {
	i, n := c.selected, len(c.businesses)
	next := i

	switch d {
	case Right:
		if i%GridColumns == 0 && i+1 < n {
			next = i + 1
		}
	case Left:
		if i%GridColumns == 1 {
			next = i - 1
		}
	case Up:
		if i > 1 {
			next = i - GridColumns
		}
	case Down:
		if i < n-GridColumns {
			next = i + GridColumns
		}
	}

	if next == i {
		return false
	}
	c.selected = next
	return true
}

// Progress advances every business by elapsed and returns the payouts of
// the cycles that completed, in grid order.
func (c *BusinessContainer) Progress(elapsed time.Duration) []Payout {
	var payouts []Payout
	for i := range c.businesses {
		if amount, ok := c.businesses[i].Progress(elapsed); ok {
			payouts = append(payouts, Payout{Index: i, Name: c.businesses[i].Name, Amount: amount})
		}
	}
	return payouts
}

// Clone returns a deep copy.
func (c *BusinessContainer) Clone() *BusinessContainer {
	return &BusinessContainer{
		X:          c.X,
		Y:          c.Y,
		businesses: c.Businesses(),
		selected:   c.selected,
	}
}
