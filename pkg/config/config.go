package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/rng"
	"github.com/matzehuels/arbor/pkg/shape"
	"github.com/matzehuels/arbor/pkg/tree"
)

// Defaults grow the stock tree: a tall box crown above the root.
const (
	DefaultAttractionPoints = 500
	DefaultInfluenceRadius  = 7.0
	DefaultKillDistance     = 2.0
	DefaultNodeSize         = 0.15
	DefaultMaxIterations    = 200
	DefaultBranchSides      = 8
	DefaultBranchThickness  = 0.2
	DefaultColour           = "#4a3b2a"
)

// Settings is the full user-facing configuration of a run.
//
// InfluenceRadius and KillDistance are multiples of NodeSize. BranchSides,
// BranchThickness and Colour only affect rendering.
type Settings struct {
	AttractionPoints int        `json:"attraction_points" toml:"attraction_points" yaml:"attraction_points"`
	Crown            shape.Spec `json:"crown" toml:"crown" yaml:"crown"`
	InfluenceRadius  float64    `json:"influence_radius" toml:"influence_radius" yaml:"influence_radius"`
	KillDistance     float64    `json:"kill_distance" toml:"kill_distance" yaml:"kill_distance"`
	NodeSize         float64    `json:"node_size" toml:"node_size" yaml:"node_size"`
	MaxIterations    int        `json:"max_iterations" toml:"max_iterations" yaml:"max_iterations"`
	Origin           [3]float64 `json:"origin" toml:"origin" yaml:"origin"`
	Seed             uint64     `json:"seed" toml:"seed" yaml:"seed"`

	BranchSides     int     `json:"branch_sides" toml:"branch_sides" yaml:"branch_sides"`
	BranchThickness float64 `json:"branch_thickness" toml:"branch_thickness" yaml:"branch_thickness"`
	Colour          string  `json:"colour" toml:"colour" yaml:"colour"`
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		AttractionPoints: DefaultAttractionPoints,
		Crown: shape.Spec{
			Kind:   shape.KindBox,
			Centre: [3]float64{0, 2.5, 0},
			Size:   [3]float64{2, 5, 2},
		},
		InfluenceRadius: DefaultInfluenceRadius,
		KillDistance:    DefaultKillDistance,
		NodeSize:        DefaultNodeSize,
		MaxIterations:   DefaultMaxIterations,
		Seed:            rng.DefaultSeed,
		BranchSides:     DefaultBranchSides,
		BranchThickness: DefaultBranchThickness,
		Colour:          DefaultColour,
	}
}

// Validate reports the first setting the engine or renderers cannot use.
// Crown problems carry INVALID_SHAPE; everything else INVALID_SETTINGS.
func (s Settings) Validate() error {
	if s.AttractionPoints < 0 {
		return errors.New(errors.ErrCodeInvalidSettings,
			"attraction_points must be >= 0, got %d", s.AttractionPoints)
	}
	if s.MaxIterations <= 0 {
		return errors.New(errors.ErrCodeInvalidSettings,
			"max_iterations must be > 0, got %d", s.MaxIterations)
	}
	if err := errors.ValidatePositive("node_size", s.NodeSize); err != nil {
		return err
	}
	if err := errors.ValidatePositive("kill_distance", s.KillDistance); err != nil {
		return err
	}
	if err := errors.ValidateFinite("influence_radius", s.InfluenceRadius); err != nil {
		return err
	}
	if s.InfluenceRadius <= s.KillDistance {
		return errors.New(errors.ErrCodeInvalidSettings,
			"influence_radius (%g) must be greater than kill_distance (%g)", s.InfluenceRadius, s.KillDistance)
	}
	for i, c := range s.Origin {
		if err := errors.ValidateFinite(axisName("origin", i), c); err != nil {
			return err
		}
	}
	if err := s.Crown.Validate(); err != nil {
		return err
	}
	if s.BranchSides < 3 {
		return errors.New(errors.ErrCodeInvalidSettings,
			"branch_sides must be >= 3, got %d", s.BranchSides)
	}
	if err := errors.ValidatePositive("branch_thickness", s.BranchThickness); err != nil {
		return err
	}
	if _, err := s.StrokeColour(); err != nil {
		return err
	}
	return nil
}

// TreeSettings converts s into engine settings. s must be valid.
func (s Settings) TreeSettings() (tree.Settings, error) {
	crown, err := s.Crown.Sampler()
	if err != nil {
		return tree.Settings{}, err
	}
	return tree.Settings{
		AttractionPoints: s.AttractionPoints,
		Crown:            crown,
		InfluenceRadius:  s.InfluenceRadius,
		KillDistance:     s.KillDistance,
		NodeSize:         s.NodeSize,
		MaxIterations:    s.MaxIterations,
	}, nil
}

// OriginVec returns the root position.
func (s Settings) OriginVec() r3.Vec {
	return r3.Vec{X: s.Origin[0], Y: s.Origin[1], Z: s.Origin[2]}
}

// EffectiveSeed maps the zero seed to rng.DefaultSeed.
func (s Settings) EffectiveSeed() uint64 {
	if s.Seed == 0 {
		return rng.DefaultSeed
	}
	return s.Seed
}

// Stream returns a fresh random stream for the configured seed.
func (s Settings) Stream() *rng.Stream {
	return rng.New(s.EffectiveSeed())
}

// StrokeColour parses Colour as a hex colour ("#rgb" or "#rrggbb").
func (s Settings) StrokeColour() (colorful.Color, error) {
	c, err := colorful.Hex(s.Colour)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidSettings, err,
			"colour must be a hex colour like %s, got %q", DefaultColour, s.Colour)
	}
	return c, nil
}

// Generate validates s and runs a complete growth.
func (s Settings) Generate(opts ...tree.Option) (*tree.Tree, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	ts, err := s.TreeSettings()
	if err != nil {
		return nil, err
	}
	return tree.Generate(ts, s.OriginVec(), s.Stream(), opts...), nil
}

func axisName(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
