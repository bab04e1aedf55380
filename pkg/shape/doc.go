// Package shape provides the volumetric point samplers that seed tree growth.
//
// A crown volume is anything that implements [Sampler]. Two variants ship with
// the package:
//
//   - [Sphere]: uniform over a ball, using cube-root radial scaling
//   - [Box]: uniform over an axis-aligned box
//
// Samplers are stateless; all randomness comes from the [rng.Source] passed to
// [Sampler.Sample], so a seeded source makes a point cloud reproducible.
//
// # Configuration
//
// [Spec] is the serializable descriptor used by configuration files:
//
//	crown := shape.Spec{Kind: shape.KindSphere, Centre: [3]float64{0, 3, 0}, Radius: 2}
//	s, err := crown.Sampler()
//	pts := shape.Points(s, rng.New(42), 500)
//
// [rng.Source]: github.com/matzehuels/arbor/pkg/rng.Source
package shape
