package pathfinder

import "github.com/paulmach/orb"

// SpiralPath returns an outward square spiral of 2*turns waypoints around
// origin. It starts heading along +Y and turns 90° counter-clockwise after
// every waypoint; both legs of a turn are step*k long for the k-th turn.
func SpiralPath(turns int, origin orb.Point, step float64) []orb.Point {
	if turns <= 0 {
		return nil
	}

	var (
		x, y   = origin.X(), origin.Y()
		dx, dy = 0.0, 1.0
		l      = step
	)
	mission := make([]orb.Point, 0, 2*turns)
	for i := 0; i < turns; i++ {
		for j := 0; j < 2; j++ {
			x, y = x+l*dx, y+l*dy
			mission = append(mission, orb.Point{x, y})
			dx, dy = -dy, dx
		}
		l += step
	}
	return mission
}

// NewSpiralMission returns a spiral mission, optionally flying back to origin.
func NewSpiralMission(description string, turns int, origin orb.Point, step float64, returnHome bool) Mission {
	waypoints := SpiralPath(turns, origin, step)
	if returnHome && len(waypoints) > 0 {
		waypoints = append(waypoints, origin)
	}
	return NewMission(description, KindSpiral, waypoints)
}
