package pathfinder

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// An Agent is a thing - anything that can move
type Agent struct {
	UUID   string
	Nick   string
	Start  Pose
	Params AgentParams
}

// NewAgent returns an agent with a fresh UUID and the default parameters.
func NewAgent(nick string, start Pose) Agent {
	return Agent{
		UUID:   uuid.NewString(),
		Nick:   nick,
		Start:  start,
		Params: DefaultAgentParams(),
	}
}

// Pose is a position on the plane plus the heading in radians.
type Pose struct {
	Position orb.Point
	Heading  float64
}

func (p Pose) String() string {
	return fmt.Sprintf("(%.2f, %.2f) @ %.3f", p.Position.X(), p.Position.Y(), p.Heading)
}

// AgentParams are the physical and sensor parameters of an agent.
// They are fixed for the duration of a mission.
type AgentParams struct {
	// HalfWidth is half the body width of the agent.
	HalfWidth float64 `yaml:"half_width"`

	// ScanRange is how far ahead the proximity scanner probes for obstacles.
	ScanRange float64 `yaml:"scan_range"`

	// ViewDistance is the camera range used for marker discovery.
	ViewDistance float64 `yaml:"view_distance"`

	// Tick is the simulated time between two steps.
	Tick float64 `yaml:"tick"`

	// Speed is the distance covered per unit of time.
	Speed float64 `yaml:"speed"`
}

// DefaultAgentParams returns the parameters of the reference rover.
func DefaultAgentParams() AgentParams {
	return AgentParams{
		HalfWidth:    4,
		ScanRange:    20,
		ViewDistance: 25,
		Tick:         0.5,
		Speed:        10,
	}
}

// StepSize is the distance travelled in one tick.
func (p AgentParams) StepSize() float64 {
	return p.Speed * p.Tick
}

// Validate reports parameters that would make the step loop undefined.
func (p AgentParams) Validate() error {
	switch {
	case !(p.Speed > 0) || math.IsInf(p.Speed, 0):
		return fmt.Errorf("%w: speed must be positive, got %v", ErrInvalidParams, p.Speed)
	case !(p.Tick > 0) || math.IsInf(p.Tick, 0):
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalidParams, p.Tick)
	case !(p.StepSize() > 0) || math.IsInf(p.StepSize(), 0):
		return fmt.Errorf("%w: step size speed*tick must be positive and finite, got %v", ErrInvalidParams, p.StepSize())
	case p.HalfWidth < 0:
		return fmt.Errorf("%w: half width must not be negative, got %v", ErrInvalidParams, p.HalfWidth)
	case p.ScanRange < 0:
		return fmt.Errorf("%w: scan range must not be negative, got %v", ErrInvalidParams, p.ScanRange)
	case p.ViewDistance < 0:
		return fmt.Errorf("%w: view distance must not be negative, got %v", ErrInvalidParams, p.ViewDistance)
	}
	return nil
}
