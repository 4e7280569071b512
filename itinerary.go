package pathfinder

import (
	"slices"

	"github.com/paulmach/orb"
)

// Itinerary is the stack of pending waypoints. The most recently pushed
// waypoint is always the next one to visit.
type Itinerary struct {
	stack []orb.Point
}

// NewItinerary returns an itinerary that visits waypoints in the given order.
func NewItinerary(waypoints ...orb.Point) *Itinerary {
	it := &Itinerary{stack: slices.Clone(waypoints)}
	slices.Reverse(it.stack)
	return it
}

// Push puts p on top of the stack.
func (it *Itinerary) Push(p orb.Point) {
	it.stack = append(it.stack, p)
}

// Pop removes and returns the top waypoint.
func (it *Itinerary) Pop() (orb.Point, bool) {
	p, ok := it.Peek()
	if ok {
		it.stack = it.stack[:len(it.stack)-1]
	}
	return p, ok
}

// Peek returns the top waypoint without removing it.
func (it *Itinerary) Peek() (orb.Point, bool) {
	if len(it.stack) == 0 {
		return orb.Point{}, false
	}
	return it.stack[len(it.stack)-1], true
}

// Len is the number of pending waypoints.
func (it *Itinerary) Len() int {
	return len(it.stack)
}

// Empty reports whether nothing is left to visit.
func (it *Itinerary) Empty() bool {
	return len(it.stack) == 0
}

// Waypoints returns the pending waypoints in visiting order.
func (it *Itinerary) Waypoints() []orb.Point {
	out := slices.Clone(it.stack)
	slices.Reverse(out)
	return out
}
