// Package config holds the rollingdie CLI settings.
//
// Settings come from three layers, later ones winning: built-in defaults,
// an optional YAML file, and ROLLINGDIE_* environment variables:
//
//	heuristics:  [fancy_manhattan, manhattan, euclidean, diagonal]
//	format:      text        # text | json | yaml
//	log_level:   warn
//	color:       true
//	parallelism: 4
//	walkthrough: true
//
// Validate rejects unknown heuristic names, formats and log levels before
// any maze is searched.
package config
