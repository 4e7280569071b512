package pathfinder

import (
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"
)

// Config is the file form of a simulation: agent, world, mission and limits.
type Config struct {
	Agent   AgentConfig   `yaml:"agent"`
	World   WorldSpec     `yaml:"world"`
	Mission MissionConfig `yaml:"mission"`
	Limits  LimitsConfig  `yaml:"limits"`
	Log     LogConfig     `yaml:"log"`

	// Seed feeds the world generator.
	Seed uint64 `yaml:"seed"`

	// Output is where the GeoJSON trajectory is written. Empty disables it.
	Output string `yaml:"output"`
}

// AgentConfig places the agent and sets its parameters.
type AgentConfig struct {
	Nick    string  `yaml:"nick"`
	Start   Coord   `yaml:"start"`
	Heading float64 `yaml:"heading"`

	AgentParams `yaml:",inline"`
}

// MissionConfig selects and parameterises the itinerary.
type MissionConfig struct {
	Description string      `yaml:"description"`
	Kind        MissionKind `yaml:"kind"`

	// spiral
	Turns      int     `yaml:"turns"`
	Step       float64 `yaml:"step"`
	Origin     Coord   `yaml:"origin"`
	ReturnHome bool    `yaml:"return_home"`

	// coverage
	Area     string  `yaml:"area"`
	CellSize float64 `yaml:"cell_size"`

	// waypoints
	Waypoints []Coord `yaml:"waypoints"`
}

// LimitsConfig bounds a run.
type LimitsConfig struct {
	MaxLegs int `yaml:"max_legs"`
}

// Coord is a point in config files.
type Coord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Point converts c to an orb.Point.
func (c Coord) Point() orb.Point {
	return orb.Point{c.X, c.Y}
}

// DefaultConfig returns the reference scenario: a six turn spiral flown back
// home through a world of 5 obstacles and 25 markers.
func DefaultConfig() Config {
	return Config{
		Agent: AgentConfig{
			Nick:        "rover",
			Heading:     0.77,
			AgentParams: DefaultAgentParams(),
		},
		World: DefaultWorldSpec(),
		Mission: MissionConfig{
			Description: "spiral survey",
			Kind:        KindSpiral,
			Turns:       6,
			Step:        20,
			ReturnHome:  true,
			CellSize:    20,
		},
		Limits: LimitsConfig{MaxLegs: DefaultMaxLegs},
		Log:    LogConfig{Level: "info", Format: "text"},
		Seed:   1,
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section of the config.
func (c Config) Validate() error {
	if err := c.Agent.Validate(); err != nil {
		return fmt.Errorf("%w: agent: %w", ErrInvalidConfig, err)
	}
	if err := c.World.Validate(); err != nil {
		return fmt.Errorf("%w: world: %w", ErrInvalidConfig, err)
	}
	if c.Limits.MaxLegs < 0 {
		return fmt.Errorf("%w: limits: max_legs must not be negative", ErrInvalidConfig)
	}
	if _, err := NewLogger(c.Log, io.Discard); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}

	m := c.Mission
	if !m.Kind.IsValid() {
		return fmt.Errorf("%w: mission: unknown kind %q", ErrInvalidConfig, m.Kind)
	}
	switch m.Kind {
	case KindSpiral:
		if m.Turns < 0 || !(m.Step > 0) {
			return fmt.Errorf("%w: mission: spiral needs turns >= 0 and step > 0", ErrInvalidConfig)
		}
	case KindCoverage:
		if m.Area == "" || !(m.CellSize > 0) {
			return fmt.Errorf("%w: mission: coverage needs an area and cell_size > 0", ErrInvalidConfig)
		}
	}
	return nil
}

// StartPose is the agent's configured start.
func (c Config) StartPose() Pose {
	return Pose{Position: c.Agent.Start.Point(), Heading: c.Agent.Heading}
}

// BuildAgent returns a fresh agent as configured.
func (c Config) BuildAgent() Agent {
	a := NewAgent(c.Agent.Nick, c.StartPose())
	a.Params = c.Agent.AgentParams
	return a
}

// BuildMission assembles the configured itinerary. Coverage areas are read
// from disk.
func (c Config) BuildMission() (Mission, error) {
	m := c.Mission
	switch m.Kind {
	case KindSpiral:
		return NewSpiralMission(m.Description, m.Turns, m.Origin.Point(), m.Step, m.ReturnHome), nil
	case KindCoverage:
		area, err := LoadArea(m.Area)
		if err != nil {
			return Mission{}, err
		}
		return NewCoverageMission(m.Description, area, m.CellSize, c.Agent.Start.Point())
	case KindWaypoints:
		points := make([]orb.Point, 0, len(m.Waypoints))
		for _, wp := range m.Waypoints {
			points = append(points, wp.Point())
		}
		return NewMission(m.Description, KindWaypoints, points), nil
	}
	return Mission{}, fmt.Errorf("%w: mission: unknown kind %q", ErrInvalidConfig, m.Kind)
}
