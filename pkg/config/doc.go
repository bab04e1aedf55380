// Package config loads, validates and writes growth settings.
//
// Settings are read from TOML (the default) or YAML, chosen by file
// extension. Keys missing from a file keep their [Default] values, so a
// configuration only needs to name what it changes:
//
//	# arbor.toml
//	attraction_points = 800
//	node_size = 0.1
//
//	[crown]
//	kind = "sphere"
//	centre = [0.0, 3.0, 0.0]
//	radius = 2.0
//
// [Settings.Validate] rejects every combination the growth engine cannot run
// with. Validation happens once, before an engine is built, so the engine
// itself never returns errors.
package config
