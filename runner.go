package pathfinder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Runner drives a navigator over a mission until the itinerary is empty.
type Runner struct {
	agent   Agent
	nav     *Navigator
	maxLegs int
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *missionMetrics
}

// NewRunner returns a runner for agent in world.
func NewRunner(world *World, agent Agent, opts ...Option) (*Runner, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger.With("agent", agent.UUID)
	if agent.Nick != "" {
		logger = logger.With("nick", agent.Nick)
	}

	nav, err := NewNavigator(world, agent.Params, logger)
	if err != nil {
		return nil, err
	}

	metrics, err := newMissionMetrics(o.meterProvider)
	if err != nil {
		return nil, err
	}

	return &Runner{
		agent:   agent,
		nav:     nav,
		maxLegs: o.maxLegs,
		logger:  logger,
		tracer:  o.tracerProvider.Tracer(instrumentationName),
		metrics: metrics,
	}, nil
}

// Report is the outcome of a mission run.
type Report struct {
	MissionID string
	AgentUUID string

	Start Pose
	Final Pose

	// Path holds one pose per step, starting with Start.
	Path []Pose

	Legs       []Leg
	Discovered []Marker
	Missed     []orb.Point

	// Pending is what was left on the itinerary when the run stopped early.
	Pending []orb.Point

	Steps int
}

// Count returns the number of legs that ended with outcome.
func (r *Report) Count(outcome LegOutcome) int {
	n := 0
	for _, l := range r.Legs {
		if l.Outcome == outcome {
			n++
		}
	}
	return n
}

// Trace returns the visited positions as a line.
func (r *Report) Trace() orb.LineString {
	ls := make(orb.LineString, 0, len(r.Path))
	for _, p := range r.Path {
		ls = append(ls, p.Position)
	}
	return ls
}

// Run flies mission from the agent's start pose. The itinerary is popped one
// waypoint at a time and handed to the navigator; replans push onto the same
// itinerary so the next pop picks them up.
//
// Run fails with ErrNavigationStalled once the leg ceiling is reached while
// waypoints are still pending, and with ctx.Err() when ctx is cancelled. In
// both cases the partial report is returned alongside the error.
func (r *Runner) Run(ctx context.Context, m Mission) (*Report, error) {
	ctx, span := r.tracer.Start(ctx, "pathfinder.mission", trace.WithAttributes(
		attribute.String("mission.id", m.ID),
		attribute.String("mission.kind", string(m.Kind)),
		attribute.Int("mission.waypoints", len(m.Waypoints)),
	))
	defer span.End()

	s := NewState(r.agent.Start, NewItinerary(m.Waypoints...))
	logger := r.logger.With("mission", m.ID)
	logger.Info("mission started", "kind", m.Kind, "waypoints", len(m.Waypoints), "start", r.agent.Start)

	var (
		legs []Leg
		err  error
	)
	for !s.Itinerary.Empty() {
		if err = ctx.Err(); err != nil {
			break
		}
		if len(legs) >= r.maxLegs {
			err = fmt.Errorf("%w: %d legs flown, %d waypoints pending", ErrNavigationStalled, len(legs), s.Itinerary.Len())
			break
		}

		target, _ := s.Itinerary.Pop()
		known := len(s.Discovered)
		leg := r.nav.Travel(s, target)
		legs = append(legs, leg)

		r.metrics.recordLeg(ctx, m.ID, leg, s.Discovered[known:])
		span.AddEvent("leg", trace.WithAttributes(
			attribute.String("leg.outcome", string(leg.Outcome)),
			attribute.Int("leg.steps", leg.Steps),
			attribute.Int("itinerary.depth", leg.Depth),
		))
	}

	report := r.report(m, s, legs)
	span.SetAttributes(
		attribute.Int("mission.legs", len(legs)),
		attribute.Int("mission.steps", report.Steps),
		attribute.Int("mission.markers", len(report.Discovered)),
		attribute.Int("mission.missed", len(report.Missed)),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("mission aborted", "error", err, "legs", len(legs), "pending", len(report.Pending))
		return report, err
	}

	span.SetStatus(codes.Ok, "mission complete")
	logger.Info("mission complete",
		"legs", len(legs),
		"steps", report.Steps,
		"markers", len(report.Discovered),
		"missed", len(report.Missed),
		"final", report.Final)
	return report, nil
}

func (r *Runner) report(m Mission, s *State, legs []Leg) *Report {
	rep := &Report{
		MissionID:  m.ID,
		AgentUUID:  r.agent.UUID,
		Start:      r.agent.Start,
		Final:      s.Pose,
		Path:       s.snapshotPath(),
		Legs:       legs,
		Discovered: append([]Marker(nil), s.Discovered...),
		Missed:     append([]orb.Point(nil), s.Missed...),
		Pending:    s.Itinerary.Waypoints(),
	}
	for _, l := range legs {
		rep.Steps += l.Steps
	}
	return rep
}
