package pathfinder

import (
	"log/slog"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// LegOutcome is how a leg towards a single target ended.
type LegOutcome string

// The outcomes of a leg
const (
	// LegReached means the agent arrived at the target.
	LegReached LegOutcome = "reached"

	// LegMissed means an obstacle encloses the target and it was abandoned.
	LegMissed LegOutcome = "missed"

	// LegPreempted means the target was put back under a detour or a newly
	// discovered marker.
	LegPreempted LegOutcome = "preempted"
)

// IsValid checks if the outcome is a recognized value.
func (o LegOutcome) IsValid() bool {
	switch o {
	case LegReached, LegMissed, LegPreempted:
		return true
	default:
		return false
	}
}

// Leg records one attempt to reach a target.
type Leg struct {
	Target  orb.Point
	Outcome LegOutcome
	Steps   int

	// Pushed lists the waypoints put on the itinerary by this leg, in push order.
	Pushed []orb.Point

	// Obstacle is the obstacle that ended the leg, if any.
	Obstacle *Obstacle

	// Marker is the marker the agent was diverted to, if any.
	Marker *Marker

	// Depth is the itinerary length once the leg ended.
	Depth int
}

// Navigator moves an agent through a world one leg at a time.
type Navigator struct {
	world  *World
	params AgentParams
	logger *slog.Logger
}

// NewNavigator validates params and returns a navigator for world.
// A nil logger discards output.
func NewNavigator(world *World, params AgentParams, logger *slog.Logger) (*Navigator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if world == nil {
		world = NewWorld(nil, nil)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Navigator{world: world, params: params, logger: logger}, nil
}

// Params returns the agent parameters the navigator steps with.
func (n *Navigator) Params() AgentParams {
	return n.params
}

// Travel steps the agent in s towards target until it arrives or something
// sensed along the way forces a replan. Replans push waypoints onto
// s.Itinerary and end the leg early; the caller always continues with
// whatever is on top of the itinerary.
func (n *Navigator) Travel(s *State, target orb.Point) Leg {
	leg := Leg{Target: target, Outcome: LegReached}
	if s.Pose.Position.Equal(target) {
		return n.finish(s, leg)
	}

	step := n.params.StepSize()
	pos := s.Pose.Position
	heading := math.Atan2(target.Y()-pos.Y(), target.X()-pos.X())
	s.Pose.Heading = heading
	travel := orb.Point{step * math.Cos(heading), step * math.Sin(heading)}

	distance := planar.Distance(pos, target)
	for distance > step {
		pos = s.Pose.Position
		sensed := n.world.VisibleObstacles(pos, n.params.ScanRange, n.params.HalfWidth, heading, distance)
		if obstacle, ok := ClosestObstacle(pos, sensed); ok {
			return n.finish(s, n.avoid(s, leg, obstacle, travel))
		}

		if marker, ok := n.discover(s, heading); ok {
			s.Itinerary.Push(target)
			s.Itinerary.Push(marker.Position)
			leg.Outcome = LegPreempted
			leg.Marker = &marker
			leg.Pushed = []orb.Point{target, marker.Position}
			n.logger.Info("leg postponed, new marker found",
				"target", target, "marker", marker.Position, "significant", marker.Significant)
			return n.finish(s, leg)
		}

		s.moveTo(orb.Point{pos.X() + travel.X(), pos.Y() + travel.Y()})
		leg.Steps++
		distance = planar.Distance(s.Pose.Position, target)
	}

	if distance > 0 {
		s.moveTo(target)
		leg.Steps++
	}
	n.logger.Debug("target reached", "target", target, "steps", leg.Steps)
	return n.finish(s, leg)
}

// avoid handles an obstacle in the beam: either the target is unreachable
// and abandoned, or a detour around the obstacle is pushed above it.
func (n *Navigator) avoid(s *State, leg Leg, o Obstacle, travel orb.Point) Leg {
	hw := n.params.HalfWidth
	leg.Obstacle = &o

	// target inside or close to the obstacle
	if planar.Distance(o.Center, leg.Target) < o.Radius+3*hw {
		leg.Outcome = LegMissed
		next, ok := s.Itinerary.Peek()
		if ok && planar.Distance(next, leg.Target) > 5*hw {
			p := IntermediateWaypoint(leg.Target, next)
			s.Itinerary.Push(p)
			leg.Pushed = []orb.Point{p}
			n.logger.Info("target missed, intermediate waypoint added", "target", leg.Target, "intermediate", p)
			return leg
		}
		s.Missed = append(s.Missed, leg.Target)
		n.logger.Warn("target missed", "target", leg.Target, "obstacle", o.Center)
		return leg
	}

	detour := DetourWaypoint(s.Pose.Position, travel, o, hw)
	s.Itinerary.Push(leg.Target)
	s.Itinerary.Push(detour)
	leg.Outcome = LegPreempted
	leg.Pushed = []orb.Point{leg.Target, detour}
	n.logger.Info("leg postponed, going round obstacle", "target", leg.Target, "detour", detour)
	return leg
}

// discover records newly visible markers and returns the closest of them.
func (n *Navigator) discover(s *State, heading float64) (Marker, bool) {
	pos := s.Pose.Position
	fresh := s.remember(n.world.VisibleMarkers(pos, n.params.ViewDistance, heading))
	if len(fresh) == 0 {
		return Marker{}, false
	}

	closest, best := fresh[0], planar.Distance(fresh[0].Position, pos)
	for _, m := range fresh[1:] {
		if d := planar.Distance(m.Position, pos); d < best {
			closest, best = m, d
		}
	}
	return closest, true
}

func (n *Navigator) finish(s *State, leg Leg) Leg {
	leg.Depth = s.Itinerary.Len()
	return leg
}

// DetourWaypoint returns the point that routes an agent at position, moving
// along travel, around obstacle o. The point lies R + 2*halfWidth from the
// obstacle centre, perpendicular to travel, on the side away from the
// obstacle. A zero travel vector is treated as heading along +X.
func DetourWaypoint(position, travel orb.Point, o Obstacle, halfWidth float64) orb.Point {
	norm := math.Hypot(travel.X(), travel.Y())
	if norm == 0 {
		travel, norm = orb.Point{1, 0}, 1
	}
	toCenter := orb.Point{o.Center.X() - position.X(), o.Center.Y() - position.Y()}

	var offset orb.Point
	if cross(travel, toCenter) > 0 {
		// obstacle on the left, go right
		offset = orb.Point{travel.Y() / norm, -travel.X() / norm}
	} else {
		offset = orb.Point{-travel.Y() / norm, travel.X() / norm}
	}

	r := o.Radius + 2*halfWidth
	return orb.Point{o.Center.X() + offset.X()*r, o.Center.Y() + offset.Y()*r}
}

// IntermediateWaypoint blends an unreachable target with the next pending
// waypoint, staying close to the target.
func IntermediateWaypoint(target, next orb.Point) orb.Point {
	return orb.Point{
		0.7*target.X() + 0.3*next.X(),
		0.7*target.Y() + 0.3*next.Y(),
	}
}

func cross(a, b orb.Point) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}
