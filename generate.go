package pathfinder

import (
	"fmt"
	"math/rand/v2"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// WorldSpec describes a randomly generated world.
type WorldSpec struct {
	Obstacles int `yaml:"obstacles"`
	Markers   int `yaml:"markers"`

	// MinSeparation is the minimum gap between two obstacle rims.
	MinSeparation float64 `yaml:"min_separation"`

	// Extent is the side of the square, centred on the origin, that holds
	// every obstacle centre and marker.
	Extent float64 `yaml:"extent"`

	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`

	// SignificantRatio is the probability that a marker is significant.
	SignificantRatio float64 `yaml:"significant_ratio"`

	// MaxAttempts bounds the number of consecutive rejected samples while
	// placing a single entity.
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultWorldSpec returns the layout of the reference scenario.
func DefaultWorldSpec() WorldSpec {
	return WorldSpec{
		Obstacles:        5,
		Markers:          25,
		MinSeparation:    10,
		Extent:           250,
		MinRadius:        10,
		MaxRadius:        25,
		SignificantRatio: 0.1,
		MaxAttempts:      10000,
	}
}

// Validate checks that ws describes a placeable world.
func (ws WorldSpec) Validate() error {
	switch {
	case ws.Obstacles < 0 || ws.Markers < 0:
		return fmt.Errorf("%w: negative entity count", ErrWorldGeneration)
	case !(ws.Extent > 0):
		return fmt.Errorf("%w: extent must be positive, got %v", ErrWorldGeneration, ws.Extent)
	case ws.MinRadius <= 0 || ws.MaxRadius < ws.MinRadius:
		return fmt.Errorf("%w: bad radius range [%v, %v]", ErrWorldGeneration, ws.MinRadius, ws.MaxRadius)
	case ws.MinSeparation < 0:
		return fmt.Errorf("%w: negative separation", ErrWorldGeneration)
	case ws.SignificantRatio < 0 || ws.SignificantRatio > 1:
		return fmt.Errorf("%w: significant ratio %v outside [0, 1]", ErrWorldGeneration, ws.SignificantRatio)
	case ws.MaxAttempts <= 0:
		return fmt.Errorf("%w: max attempts must be positive", ErrWorldGeneration)
	}
	return nil
}

// GenerateWorld places obstacles and markers by rejection sampling.
// Every pair of obstacles is separated by more than the sum of their radii
// plus MinSeparation, and every marker lies strictly outside all obstacles.
// The same rng state always produces the same world.
func GenerateWorld(rng *rand.Rand, ws WorldSpec) (*World, error) {
	if err := ws.Validate(); err != nil {
		return nil, err
	}

	sample := func() orb.Point {
		return orb.Point{
			ws.Extent * (rng.Float64() - 0.5),
			ws.Extent * (rng.Float64() - 0.5),
		}
	}

	obstacles := make([]Obstacle, 0, ws.Obstacles)
	for len(obstacles) < ws.Obstacles {
		ok := place(ws.MaxAttempts, func() bool {
			candidate := Obstacle{
				Center: sample(),
				Radius: ws.MinRadius + (ws.MaxRadius-ws.MinRadius)*rng.Float64(),
			}
			if !separated(candidate, obstacles, ws.MinSeparation) {
				return false
			}
			obstacles = append(obstacles, candidate)
			return true
		})
		if !ok {
			return nil, fmt.Errorf("%w: placed %d of %d obstacles", ErrWorldGeneration, len(obstacles), ws.Obstacles)
		}
	}

	markers := make([]Marker, 0, ws.Markers)
	for len(markers) < ws.Markers {
		ok := place(ws.MaxAttempts, func() bool {
			candidate := Marker{
				Position:    sample(),
				Significant: rng.Float64() < ws.SignificantRatio,
			}
			if !outside(candidate.Position, obstacles) {
				return false
			}
			markers = append(markers, candidate)
			return true
		})
		if !ok {
			return nil, fmt.Errorf("%w: placed %d of %d markers", ErrWorldGeneration, len(markers), ws.Markers)
		}
	}

	return NewWorld(obstacles, markers), nil
}

// place calls try until it succeeds, at most maxAttempts times.
func place(maxAttempts int, try func() bool) bool {
	for range maxAttempts {
		if try() {
			return true
		}
	}
	return false
}

func separated(candidate Obstacle, obstacles []Obstacle, gap float64) bool {
	for _, o := range obstacles {
		if planar.Distance(candidate.Center, o.Center) <= candidate.Radius+o.Radius+gap {
			return false
		}
	}
	return true
}

func outside(p orb.Point, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if planar.Distance(p, o.Center) <= o.Radius {
			return false
		}
	}
	return true
}
