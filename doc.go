// Package pathfinder simulates a ground agent visiting an itinerary of
// waypoints on a plane of circular obstacles and point markers.
//
// The agent senses with a short forward proximity beam and a longer range
// camera. Every leg towards a waypoint either reaches it, abandons it, or is
// preempted by a detour or a newly discovered marker, which are pushed on top
// of the itinerary stack and flown next.
//
//	world, _ := pathfinder.GenerateWorld(rand.New(rand.NewPCG(1, 1)), pathfinder.DefaultWorldSpec())
//	agent := pathfinder.NewAgent("rover", pathfinder.Pose{})
//	runner, _ := pathfinder.NewRunner(world, agent, pathfinder.WithMaxLegs(1000))
//	report, err := runner.Run(ctx, pathfinder.NewSpiralMission("survey", 6, orb.Point{}, 20, true))
package pathfinder
