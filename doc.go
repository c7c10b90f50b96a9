// Package rollingdie finds the shortest sequence of rolls that carries a die
// across a grid maze from the start cell to the goal cell, arriving with 1 on
// top and never showing 6 on top along the way.
//
// The search state is the cell plus the die orientation (top, east and north
// faces), so the state space is up to 24 times larger than the maze. The
// module is organized as small packages, each usable on its own:
//
//	dice/       – orientation model and the four rolls
//	grid/       – maze parsing and loading, obstacle queries
//	statespace/ – per-run node arena, successor generation and pruning
//	heuristic/  – manhattan, euclidean, diagonal and two goal-aware estimators
//	frontier/   – generic binary min-heap with decrease-key
//	astar/      – the A* driver
//	render/     – terminal walkthrough of a solution
//	stats/      – run metrics, comparison table, bar chart and json/yaml export
//	config/     – YAML + environment configuration for the CLI
//	cmd/rollingdie – the command-line front end
//
// Quick start:
//
//	g, err := grid.Parse([]string{
//		"..",
//		"SG",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := astar.Search(g, astar.WithHeuristic(heuristic.Manhattan))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Found, res.Moves) // true 3
package rollingdie
