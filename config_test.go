package pathfinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultAgentParams(), cfg.Agent.AgentParams)
	assert.Equal(t, DefaultWorldSpec(), cfg.World)
	assert.Equal(t, KindSpiral, cfg.Mission.Kind)

	m, err := cfg.BuildMission()
	require.NoError(t, err)
	assert.Len(t, m.Waypoints, 13)
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
seed: 9
agent:
  nick: scout
  start: {x: 5, y: -5}
  speed: 4
world:
  obstacles: 2
mission:
  kind: waypoints
  waypoints:
    - {x: 10, y: 0}
    - {x: 10, y: 10}
limits:
  max_legs: 50
log:
  level: debug
  format: json
`)

	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, "scout", cfg.Agent.Nick)
	assert.Equal(t, 4.0, cfg.Agent.Speed)
	assert.Equal(t, 0.5, cfg.Agent.Tick, "unset fields keep their defaults")
	assert.Equal(t, 2, cfg.World.Obstacles)
	assert.Equal(t, 25, cfg.World.Markers)
	assert.Equal(t, 50, cfg.Limits.MaxLegs)

	agent := cfg.BuildAgent()
	assert.Equal(t, orb.Point{5, -5}, agent.Start.Position)
	assert.Equal(t, 2.0, agent.Params.StepSize())
	assert.NotEmpty(t, agent.UUID)

	m, err := cfg.BuildMission()
	require.NoError(t, err)
	assert.Equal(t, KindWaypoints, m.Kind)
	assert.Equal(t, []orb.Point{{10, 0}, {10, 10}}, m.Waypoints)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "agent: [1, 2"},
		{"zero speed", "agent: {speed: 0}"},
		{"negative tick", "agent: {tick: -1}"},
		{"bad world", "world: {extent: 0}"},
		{"unknown kind", "mission: {kind: find}"},
		{"spiral without step", "mission: {kind: spiral, step: 0}"},
		{"coverage without area", "mission: {kind: coverage}"},
		{"negative max legs", "limits: {max_legs: -1}"},
		{"bad log level", "log: {level: loud}"},
		{"bad log format", "log: {format: xml}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseConfigWrapsParamErrors(t *testing.T) {
	_, err := ParseConfig([]byte("agent: {speed: -3}"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestCoverageConfig(t *testing.T) {
	dir := t.TempDir()
	area := filepath.Join(dir, "area.geojson")
	require.NoError(t, os.WriteFile(area, []byte(`{"type":"Polygon","coordinates":`+squareCoords+`}`), 0o644))

	cfg, err := ParseConfig([]byte(`mission: {kind: coverage, cell_size: 25, area: "` + area + `"}`))
	require.NoError(t, err)

	m, err := cfg.BuildMission()
	require.NoError(t, err)
	assert.Equal(t, KindCoverage, m.Kind)
	assert.Len(t, m.Waypoints, 8)
	assert.Equal(t, square, m.Area)

	cfg.Mission.Area = filepath.Join(dir, "missing.geojson")
	_, err = cfg.BuildMission()
	assert.Error(t, err)
}

func TestLoadExampleConfigs(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("examples", "testdata", "spiral.yaml"))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "rover-1", cfg.Agent.Nick)
	assert.Equal(t, 5000, cfg.Limits.MaxLegs)

	cfg, err = LoadConfig(filepath.Join("examples", "testdata", "coverage.yaml"))
	require.NoError(t, err)
	assert.Equal(t, KindCoverage, cfg.Mission.Kind)
	assert.Equal(t, orb.Point{-100, -100}, cfg.StartPose().Position)

	_, err = LoadConfig(filepath.Join("examples", "testdata", "nope.yaml"))
	assert.Error(t, err)
}
