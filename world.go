package pathfinder

import (
	"iter"
	"math"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Obstacle is a circular region the agent must not enter.
type Obstacle struct {
	Center orb.Point
	Radius float64
}

// Clearance is the distance from p to the obstacle's rim. It is negative
// when p lies inside the obstacle.
func (o Obstacle) Clearance(p orb.Point) float64 {
	return planar.Distance(p, o.Center) - o.Radius
}

// Marker is a point of interest ("tag") the camera can discover.
// ID is the marker's index in the world and identifies it across sightings.
type Marker struct {
	ID          int
	Position    orb.Point
	Significant bool
}

// World holds the obstacle and marker layout. It is read-only once built and
// may be shared between runs.
type World struct {
	obstacles []Obstacle
	markers   []Marker
}

// NewWorld builds a world from the given geometry. Marker IDs are reassigned
// to their index so they stay stable for the lifetime of the world.
func NewWorld(obstacles []Obstacle, markers []Marker) *World {
	w := &World{
		obstacles: slices.Clone(obstacles),
		markers:   slices.Clone(markers),
	}
	for i := range w.markers {
		w.markers[i].ID = i
	}
	return w
}

// Obstacles returns a copy of the obstacle layout.
func (w *World) Obstacles() []Obstacle {
	return slices.Clone(w.obstacles)
}

// Markers returns a copy of the markers in ID order.
func (w *World) Markers() []Marker {
	return slices.Clone(w.markers)
}

// Bound returns the smallest box holding every obstacle footprint and marker.
func (w *World) Bound() orb.Bound {
	var (
		b     orb.Bound
		empty = true
	)
	extend := func(p orb.Point) {
		if empty {
			b = orb.Bound{Min: p, Max: p}
			empty = false
			return
		}
		b = b.Extend(p)
	}
	for _, o := range w.obstacles {
		extend(orb.Point{o.Center.X() - o.Radius, o.Center.Y() - o.Radius})
		extend(orb.Point{o.Center.X() + o.Radius, o.Center.Y() + o.Radius})
	}
	for _, m := range w.markers {
		extend(m.Position)
	}
	return b
}

// VisibleObstacles yields the obstacles hit by the forward proximity beam.
// The beam probes the point scanRange ahead of origin along heading; an
// obstacle is reported when that point lies within its radius widened by
// halfWidth/2 and its rim is closer to origin than maxDistance, so obstacles
// beyond the current target are ignored.
func (w *World) VisibleObstacles(origin orb.Point, scanRange, halfWidth, heading, maxDistance float64) iter.Seq[Obstacle] {
	probe := project(origin, scanRange, heading)
	return func(yield func(Obstacle) bool) {
		for _, o := range w.obstacles {
			if planar.Distance(probe, o.Center) >= o.Radius+halfWidth/2 {
				continue
			}
			if maxDistance <= o.Clearance(origin) {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}

// ClosestObstacle returns the candidate whose rim is nearest to origin.
// The first minimum wins. ok is false when obstacles is empty.
func ClosestObstacle(origin orb.Point, obstacles iter.Seq[Obstacle]) (closest Obstacle, ok bool) {
	best := math.Inf(1)
	for o := range obstacles {
		if d := o.Clearance(origin); !ok || d < best {
			closest, best, ok = o, d, true
		}
	}
	return closest, ok
}

// VisibleMarkers returns the markers inside the camera's capture zone: a
// circle of radius viewDistance/2 centred viewDistance ahead of origin.
func (w *World) VisibleMarkers(origin orb.Point, viewDistance, heading float64) []Marker {
	probe := project(origin, viewDistance, heading)
	var visible []Marker
	for _, m := range w.markers {
		if planar.Distance(m.Position, probe) < viewDistance/2 {
			visible = append(visible, m)
		}
	}
	return visible
}

func project(origin orb.Point, distance, heading float64) orb.Point {
	return orb.Point{
		origin.X() + distance*math.Cos(heading),
		origin.Y() + distance*math.Sin(heading),
	}
}
