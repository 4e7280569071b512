package pathfinder

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/skovsen/D2D_AgentPathfinder"

// missionMetrics holds the instruments recorded after every leg.
type missionMetrics struct {
	legs    metric.Int64Counter
	steps   metric.Int64Counter
	markers metric.Int64Counter
	depth   metric.Int64Histogram
}

func newMissionMetrics(mp metric.MeterProvider) (*missionMetrics, error) {
	meter := mp.Meter(instrumentationName)
	m := &missionMetrics{}
	var err error

	m.legs, err = meter.Int64Counter(
		"pathfinder.legs",
		metric.WithDescription("Legs flown, by outcome"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create legs counter: %w", err)
	}

	m.steps, err = meter.Int64Counter(
		"pathfinder.steps",
		metric.WithDescription("Simulated steps taken"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create steps counter: %w", err)
	}

	m.markers, err = meter.Int64Counter(
		"pathfinder.markers.discovered",
		metric.WithDescription("Markers seen for the first time"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create markers counter: %w", err)
	}

	m.depth, err = meter.Int64Histogram(
		"pathfinder.itinerary.depth",
		metric.WithDescription("Pending waypoints after each leg"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create depth histogram: %w", err)
	}

	return m, nil
}

func (m *missionMetrics) recordLeg(ctx context.Context, missionID string, leg Leg, discovered []Marker) {
	mission := attribute.String("mission.id", missionID)
	m.legs.Add(ctx, 1, metric.WithAttributes(mission, attribute.String("leg.outcome", string(leg.Outcome))))
	m.steps.Add(ctx, int64(leg.Steps), metric.WithAttributes(mission))
	m.depth.Record(ctx, int64(leg.Depth), metric.WithAttributes(mission))
	for _, mk := range discovered {
		m.markers.Add(ctx, 1, metric.WithAttributes(mission, attribute.Bool("marker.significant", mk.Significant)))
	}
}
