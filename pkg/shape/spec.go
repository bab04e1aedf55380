package shape

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/errors"
)

// Kind names a crown volume variant in configuration files.
type Kind string

const (
	KindSphere Kind = "sphere"
	KindBox    Kind = "box"

	// kindRectangle is accepted as an alias of box.
	kindRectangle Kind = "rectangle"
)

// builders maps each kind to its constructor. Adding a volume means adding an
// entry here; nothing outside this package changes.
var builders = map[Kind]func(Spec) (Sampler, error){
	KindSphere: buildSphere,
	KindBox:    buildBox,
}

// Spec is the serializable description of a crown volume.
type Spec struct {
	Kind   Kind       `json:"kind" toml:"kind" yaml:"kind"`
	Centre [3]float64 `json:"centre" toml:"centre" yaml:"centre"`
	Radius float64    `json:"radius,omitempty" toml:"radius" yaml:"radius"`
	Size   [3]float64 `json:"size,omitempty" toml:"size" yaml:"size"`
}

// Kinds returns the supported kind names.
func Kinds() []string {
	return []string{string(KindSphere), string(KindBox)}
}

// Normalize lower-cases the kind and resolves aliases.
func (s Spec) Normalize() Spec {
	s.Kind = Kind(strings.ToLower(strings.TrimSpace(string(s.Kind))))
	if s.Kind == kindRectangle {
		s.Kind = KindBox
	}
	return s
}

// Validate checks that the descriptor names a known kind with usable
// parameters.
func (s Spec) Validate() error {
	_, err := s.Sampler()
	return err
}

// Sampler builds the concrete sampler described by s.
func (s Spec) Sampler() (Sampler, error) {
	s = s.Normalize()
	build, ok := builders[s.Kind]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidShape,
			"unknown crown kind %q (must be one of: %s)", s.Kind, strings.Join(Kinds(), ", "))
	}
	for i, c := range s.Centre {
		if err := errors.ValidateFinite(fmt.Sprintf("crown.centre[%d]", i), c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "invalid centre")
		}
	}
	return build(s)
}

// String returns a short human-readable description, e.g. "sphere r=2 @ (0,3,0)".
func (s Spec) String() string {
	s = s.Normalize()
	c := s.Centre
	switch s.Kind {
	case KindSphere:
		return fmt.Sprintf("sphere r=%g @ (%g,%g,%g)", s.Radius, c[0], c[1], c[2])
	case KindBox:
		return fmt.Sprintf("box %gx%gx%g @ (%g,%g,%g)", s.Size[0], s.Size[1], s.Size[2], c[0], c[1], c[2])
	}
	return string(s.Kind)
}

func buildSphere(s Spec) (Sampler, error) {
	if err := errors.ValidatePositive("crown.radius", s.Radius); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "invalid sphere")
	}
	return Sphere{Centre: vec(s.Centre), Radius: s.Radius}, nil
}

func buildBox(s Spec) (Sampler, error) {
	for i, v := range s.Size {
		if err := errors.ValidateFinite(fmt.Sprintf("crown.size[%d]", i), v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "invalid box")
		}
		if v < 0 {
			return nil, errors.New(errors.ErrCodeInvalidShape, "crown.size[%d] must be >= 0, got %g", i, v)
		}
	}
	if s.Size == ([3]float64{}) {
		return nil, errors.New(errors.ErrCodeInvalidShape, "crown.size must be non-zero")
	}
	return Box{Centre: vec(s.Centre), Size: vec(s.Size)}, nil
}

func vec(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}
