package pathfinder

import (
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Mission is the main datatype
type Mission struct {
	ID          string
	Description string
	Kind        MissionKind
	Waypoints   []orb.Point

	// Area is the surveyed polygon of a coverage mission.
	Area orb.Polygon
}

// MissionKind is a String
type MissionKind string

// The kinds of mission available
const (
	KindSpiral    MissionKind = "spiral"
	KindCoverage  MissionKind = "coverage"
	KindWaypoints MissionKind = "waypoints"
)

// IsValid checks if the kind is a recognized value.
func (k MissionKind) IsValid() bool {
	switch k {
	case KindSpiral, KindCoverage, KindWaypoints:
		return true
	default:
		return false
	}
}

// NewMission returns a mission with a fresh ID visiting waypoints in order.
func NewMission(description string, kind MissionKind, waypoints []orb.Point) Mission {
	return Mission{
		ID:          uuid.NewString(),
		Description: description,
		Kind:        kind,
		Waypoints:   slices.Clone(waypoints),
	}
}

// NewCoverageMission sweeps area in lanes cellSize apart, starting from the
// end of the sweep closest to start.
func NewCoverageMission(description string, area orb.Polygon, cellSize float64, start orb.Point) (Mission, error) {
	path, err := GenerateCoveragePath(area, cellSize, start)
	if err != nil {
		return Mission{}, err
	}
	m := NewMission(description, KindCoverage, path)
	m.Area = area
	return m, nil
}

// MissionArea returns the centroid and area of a coverage mission's polygon.
func (m *Mission) MissionArea() (centre orb.Point, area float64) {
	if len(m.Area) == 0 {
		return orb.Point{}, 0
	}
	return planar.CentroidArea(m.Area)
}

func (m Mission) String() string {
	return fmt.Sprintf("%s (%s) - %s - %d waypoints", m.ID, m.Kind, m.Description, len(m.Waypoints))
}

// GenerateCoveragePath returns a back-and-forth sweep over area.
// The area is split into square cells of cellSize; every column of cells
// whose centre falls inside the polygon contributes its lowest and highest
// cell centre, visited in alternating direction so consecutive columns join
// at the same end. The path is reversed when its last point is closer to
// start than its first.
func GenerateCoveragePath(area orb.Polygon, cellSize float64, start orb.Point) ([]orb.Point, error) {
	if !(cellSize > 0) {
		return nil, fmt.Errorf("%w: cell size must be positive, got %v", ErrEmptyArea, cellSize)
	}
	if len(area) == 0 || len(area[0]) == 0 {
		return nil, ErrEmptyArea
	}

	bound := area.Bound()
	cols := int(math.Ceil((bound.Max.X() - bound.Min.X()) / cellSize))
	rows := int(math.Ceil((bound.Max.Y() - bound.Min.Y()) / cellSize))

	// Reduce every column to a single min and max point along the y axis
	var columns [][2]orb.Point
	for c := 0; c < cols; c++ {
		x := bound.Min.X() + (float64(c)+0.5)*cellSize
		var (
			lo, hi orb.Point
			found  bool
		)
		for r := 0; r < rows; r++ {
			p := orb.Point{x, bound.Min.Y() + (float64(r)+0.5)*cellSize}
			if !planar.PolygonContains(area, p) {
				continue
			}
			if !found {
				lo, found = p, true
			}
			hi = p
		}
		if found {
			columns = append(columns, [2]orb.Point{lo, hi})
		}
	}
	if len(columns) == 0 {
		return nil, ErrEmptyArea
	}

	// Swap every other column so the sweep snakes across the area
	points := make([]orb.Point, 0, 2*len(columns))
	for i, col := range columns {
		if i%2 == 1 {
			col[0], col[1] = col[1], col[0]
		}
		points = append(points, col[0])
		if !col[1].Equal(col[0]) {
			points = append(points, col[1])
		}
	}

	distanceToStart := planar.Distance(points[0], start)
	distanceToEnd := planar.Distance(points[len(points)-1], start)
	if distanceToEnd < distanceToStart {
		slices.Reverse(points)
	}

	return points, nil
}

// LoadArea reads a polygon from a GeoJSON file holding a Feature, a
// FeatureCollection with exactly one feature, or a bare Geometry.
func LoadArea(path string) (orb.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read area: %w", err)
	}
	return ParseArea(data)
}

// ParseArea decodes a polygon from GeoJSON, see LoadArea.
func ParseArea(data []byte) (orb.Polygon, error) {
	var g orb.Geometry

	if f, err := geojson.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		g = f.Geometry
	} else if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && len(fc.Features) > 0 {
		if len(fc.Features) != 1 {
			return nil, fmt.Errorf("%w: must have 1 feature, got %d", ErrNotPolygon, len(fc.Features))
		}
		g = fc.Features[0].Geometry
	} else {
		geom, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("unmarshal area: %w", err)
		}
		g = geom.Geometry()
	}

	poly, ok := g.(orb.Polygon)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotPolygon, g)
	}
	return poly, nil
}
