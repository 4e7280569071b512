package pathfinder

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItineraryVisitsInListedOrder(t *testing.T) {
	it := NewItinerary(orb.Point{1, 0}, orb.Point{2, 0}, orb.Point{3, 0})
	require.Equal(t, 3, it.Len())

	var got []orb.Point
	for !it.Empty() {
		p, ok := it.Pop()
		require.True(t, ok)
		got = append(got, p)
	}
	assert.Equal(t, []orb.Point{{1, 0}, {2, 0}, {3, 0}}, got)

	_, ok := it.Pop()
	assert.False(t, ok)
}

func TestItineraryPushIsNextToVisit(t *testing.T) {
	it := NewItinerary(orb.Point{1, 0}, orb.Point{2, 0})
	it.Push(orb.Point{9, 9})

	top, ok := it.Peek()
	require.True(t, ok)
	assert.Equal(t, orb.Point{9, 9}, top)
	assert.Equal(t, 3, it.Len(), "peek must not remove")

	assert.Equal(t, []orb.Point{{9, 9}, {1, 0}, {2, 0}}, it.Waypoints())
}

func TestItineraryDoesNotAliasInput(t *testing.T) {
	in := []orb.Point{{1, 0}, {2, 0}}
	it := NewItinerary(in...)
	in[0] = orb.Point{7, 7}

	p, _ := it.Pop()
	assert.Equal(t, orb.Point{1, 0}, p)

	out := it.Waypoints()
	out[0] = orb.Point{7, 7}
	assert.Equal(t, []orb.Point{{2, 0}}, it.Waypoints())
}

func TestEmptyItinerary(t *testing.T) {
	it := NewItinerary()
	assert.True(t, it.Empty())
	_, ok := it.Peek()
	assert.False(t, ok)
	assert.Empty(t, it.Waypoints())
}
