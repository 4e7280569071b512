package pathfinder

import (
	"slices"

	"github.com/paulmach/orb"
)

// State is everything a mission mutates while it runs: the agent pose, the
// pending itinerary and the accumulated trace. The navigator receives it
// explicitly on every leg so runs never share mutable state.
type State struct {
	Pose      Pose
	Itinerary *Itinerary

	// Path holds one pose per step, starting with the start pose.
	Path []Pose

	// Discovered holds markers in the order they were first seen.
	Discovered []Marker

	// Missed holds targets abandoned without an intermediate waypoint.
	Missed []orb.Point

	seen map[int]struct{}
}

// NewState starts a run at start with the given itinerary.
func NewState(start Pose, it *Itinerary) *State {
	if it == nil {
		it = NewItinerary()
	}
	return &State{
		Pose:      start,
		Itinerary: it,
		Path:      []Pose{start},
		seen:      make(map[int]struct{}),
	}
}

// HasDiscovered reports whether the marker with the given ID was already seen.
func (s *State) HasDiscovered(id int) bool {
	_, ok := s.seen[id]
	return ok
}

// remember records the markers not seen before and returns them.
func (s *State) remember(markers []Marker) []Marker {
	var fresh []Marker
	for _, m := range markers {
		if s.HasDiscovered(m.ID) {
			continue
		}
		if s.seen == nil {
			s.seen = make(map[int]struct{})
		}
		s.seen[m.ID] = struct{}{}
		fresh = append(fresh, m)
	}
	s.Discovered = append(s.Discovered, fresh...)
	return fresh
}

// moveTo places the agent on p, keeping its heading, and records the pose.
func (s *State) moveTo(p orb.Point) {
	s.Pose.Position = p
	s.Path = append(s.Path, s.Pose)
}

func (s *State) snapshotPath() []Pose {
	return slices.Clone(s.Path)
}
