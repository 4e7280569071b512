package pathfinder

import (
	"fmt"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// circleSegments is the number of ring vertices used to draw an obstacle.
const circleSegments = 32

// Feature kinds, stored in the "kind" property of exported features.
const (
	FeatureTrajectory = "trajectory"
	FeatureObstacle   = "obstacle"
	FeatureMarker     = "marker"
	FeatureMissed     = "missed"
	FeatureStart      = "start"
)

// FeatureCollection renders the run and the world it ran in for plotting.
// The trajectory is a LineString, obstacles are polygons approximating their
// circles, markers are points flagged with whether they were discovered.
func (r *Report) FeatureCollection(w *World) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, o := range w.Obstacles() {
		f := geojson.NewFeature(circle(o.Center, o.Radius, circleSegments))
		f.ID = i
		f.Properties["kind"] = FeatureObstacle
		f.Properties["radius"] = o.Radius
		f.Properties["center"] = []float64{o.Center.X(), o.Center.Y()}
		fc.Append(f)
	}

	discovered := make(map[int]bool, len(r.Discovered))
	for _, m := range r.Discovered {
		discovered[m.ID] = true
	}
	for _, m := range w.Markers() {
		f := geojson.NewFeature(m.Position)
		f.ID = m.ID
		f.Properties["kind"] = FeatureMarker
		f.Properties["significant"] = m.Significant
		f.Properties["discovered"] = discovered[m.ID]
		fc.Append(f)
	}

	start := geojson.NewFeature(r.Start.Position)
	start.Properties["kind"] = FeatureStart
	start.Properties["agent"] = r.AgentUUID
	fc.Append(start)

	if trace := r.Trace(); len(trace) > 1 {
		f := geojson.NewFeature(trace)
		f.Properties["kind"] = FeatureTrajectory
		f.Properties["mission"] = r.MissionID
		f.Properties["steps"] = r.Steps
		f.Properties["legs"] = len(r.Legs)
		fc.Append(f)
	}

	for _, p := range r.Missed {
		f := geojson.NewFeature(p)
		f.Properties["kind"] = FeatureMissed
		fc.Append(f)
	}

	return fc
}

// WriteGeoJSON writes the FeatureCollection of the run to path.
func (r *Report) WriteGeoJSON(path string, w *World) error {
	rawJSON, err := r.FeatureCollection(w).MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal geojson: %w", err)
	}
	if err := os.WriteFile(path, rawJSON, 0o644); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}

func circle(center orb.Point, radius float64, segments int) orb.Polygon {
	ring := make(orb.Ring, 0, segments+1)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		ring = append(ring, orb.Point{
			center.X() + radius*math.Cos(a),
			center.Y() + radius*math.Sin(a),
		})
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}
