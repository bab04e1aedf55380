// Package tree grows branching structures with the space-colonization
// algorithm.
//
// A run starts from a cloud of attraction points sampled from a crown volume
// and a single root node. Each growth step has three phases:
//
//  1. Association: every surviving point finds the closest node whose distance
//     lies strictly between the kill distance and the influence radius, and
//     pulls that node toward itself.
//  2. Growth: every pre-existing node that was pulled spawns one child, one
//     node size away along the mean of its own heading and the pulls.
//  3. Pruning: points within the kill distance of any node are removed.
//
// The run ends when no points remain or the iteration cap is reached. At
// least one step always runs.
//
// Nodes live in an append-only arena owned by the [Engine]; parent links are
// arena indices, so the output is a single rooted forest with no cyclic
// ownership. On exact distance ties during association the node with the lowest
// index wins.
//
// # Usage
//
//	t := tree.Generate(tree.Settings{
//	    AttractionPoints: 500,
//	    Crown:            shape.Box{Centre: r3.Vec{Y: 2.5}, Size: r3.Vec{X: 2, Y: 5, Z: 2}},
//	    InfluenceRadius:  7,
//	    KillDistance:     2,
//	    NodeSize:         0.15,
//	    MaxIterations:    200,
//	}, r3.Vec{}, rng.New(42))
//
//	for _, seg := range t.Segments() {
//	    draw(seg.From, seg.To)
//	}
//
// Settings are assumed valid; see package config for validation.
package tree
