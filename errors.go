package pathfinder

import "errors"

var (
	// ErrInvalidParams is returned when agent parameters cannot drive the step loop.
	ErrInvalidParams = errors.New("invalid agent parameters")

	// ErrNavigationStalled is returned when a mission exceeds its leg ceiling
	// while waypoints are still pending.
	ErrNavigationStalled = errors.New("navigation stalled")

	// ErrWorldGeneration is returned when the rejection sampler runs out of attempts.
	ErrWorldGeneration = errors.New("world generation failed")

	// ErrEmptyArea is returned when a coverage area yields no waypoints.
	ErrEmptyArea = errors.New("coverage area is empty")

	// ErrNotPolygon is returned when an area file does not hold a polygon.
	ErrNotPolygon = errors.New("geometry is not a polygon")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")
)
