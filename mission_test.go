package pathfinder

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = orb.Polygon{{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {0, 0}}}

func TestGenerateCoveragePath(t *testing.T) {
	sweep := []orb.Point{
		{12.5, 12.5}, {12.5, 87.5},
		{37.5, 87.5}, {37.5, 12.5},
		{62.5, 12.5}, {62.5, 87.5},
		{87.5, 87.5}, {87.5, 12.5},
	}

	t.Run("starts at the nearest end", func(t *testing.T) {
		got, err := GenerateCoveragePath(square, 25, orb.Point{0, 0})
		require.NoError(t, err)
		assert.Equal(t, sweep, got)
	})

	t.Run("reversed when the end is nearer", func(t *testing.T) {
		got, err := GenerateCoveragePath(square, 25, orb.Point{100, 0})
		require.NoError(t, err)
		require.Len(t, got, len(sweep))
		assert.Equal(t, orb.Point{87.5, 12.5}, got[0])
		assert.Equal(t, orb.Point{12.5, 12.5}, got[len(got)-1])
	})

	t.Run("single row collapses columns to one point", func(t *testing.T) {
		strip := orb.Polygon{{{0, 0}, {60, 0}, {60, 20}, {0, 20}, {0, 0}}}
		got, err := GenerateCoveragePath(strip, 20, orb.Point{0, 0})
		require.NoError(t, err)
		assert.Equal(t, []orb.Point{{10, 10}, {30, 10}, {50, 10}}, got)
	})
}

func TestGenerateCoveragePathErrors(t *testing.T) {
	_, err := GenerateCoveragePath(square, 0, orb.Point{})
	assert.ErrorIs(t, err, ErrEmptyArea)

	_, err = GenerateCoveragePath(orb.Polygon{}, 10, orb.Point{})
	assert.ErrorIs(t, err, ErrEmptyArea)

	sliver := orb.Polygon{{{0, 0}, {100, 0}, {100, 1}, {0, 1}, {0, 0}}}
	_, err = GenerateCoveragePath(sliver, 50, orb.Point{})
	assert.ErrorIs(t, err, ErrEmptyArea)
}

func TestNewCoverageMission(t *testing.T) {
	m, err := NewCoverageMission("field", square, 25, orb.Point{0, 0})
	require.NoError(t, err)

	assert.Equal(t, KindCoverage, m.Kind)
	assert.Len(t, m.Waypoints, 8)

	centre, area := m.MissionArea()
	assert.InDelta(t, 50, centre.X(), 1e-9)
	assert.InDelta(t, 50, centre.Y(), 1e-9)
	assert.InDelta(t, 10000, math.Abs(area), 1e-9)

	var empty Mission
	_, area = empty.MissionArea()
	assert.Zero(t, area)
}

func TestNewMissionCopiesWaypoints(t *testing.T) {
	in := []orb.Point{{1, 1}}
	m := NewMission("copy", KindWaypoints, in)
	in[0] = orb.Point{2, 2}
	assert.Equal(t, orb.Point{1, 1}, m.Waypoints[0])
	assert.Contains(t, m.String(), "copy")
}

func TestMissionKindIsValid(t *testing.T) {
	assert.True(t, KindSpiral.IsValid())
	assert.True(t, KindCoverage.IsValid())
	assert.True(t, KindWaypoints.IsValid())
	assert.False(t, MissionKind("find").IsValid())
}

const squareCoords = `[[[0,0],[100,0],[100,100],[0,100],[0,0]]]`

func TestParseArea(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{
			name: "feature",
			data: `{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":` + squareCoords + `}}`,
		},
		{
			name: "feature collection",
			data: `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":` + squareCoords + `}}]}`,
		},
		{
			name: "bare geometry",
			data: `{"type":"Polygon","coordinates":` + squareCoords + `}`,
		},
		{
			name: "point",
			data: `{"type":"Point","coordinates":[1,2]}`,
			err:  ErrNotPolygon,
		},
		{
			name: "two features",
			data: `{"type":"FeatureCollection","features":[` +
				`{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[1,2]}},` +
				`{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[3,4]}}]}`,
			err: ErrNotPolygon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArea([]byte(tt.data))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, square, got)
		})
	}

	_, err := ParseArea([]byte("not json"))
	assert.Error(t, err)
}

func TestLoadArea(t *testing.T) {
	path := filepath.Join(t.TempDir(), "area.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"Polygon","coordinates":`+squareCoords+`}`), 0o644))

	got, err := LoadArea(path)
	require.NoError(t, err)
	assert.Equal(t, square, got)

	_, err = LoadArea(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.Error(t, err)
}

func TestLoadExampleArea(t *testing.T) {
	area, err := LoadArea(filepath.Join("examples", "testdata", "field.geojson"))
	require.NoError(t, err)

	path, err := GenerateCoveragePath(area, 25, orb.Point{-100, -100})
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.Equal(t, orb.Point{-97.5, -97.5}, path[0])
}
