package shape

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/errors"
)

func TestSpecSampler(t *testing.T) {
	tests := []struct {
		name     string
		spec     Spec
		wantErr  bool
		wantType string
	}{
		{"sphere", Spec{Kind: KindSphere, Radius: 2}, false, "sphere"},
		{"box", Spec{Kind: KindBox, Size: [3]float64{2, 5, 2}}, false, "box"},
		{"rectangle alias", Spec{Kind: "Rectangle", Size: [3]float64{1, 1, 1}}, false, "box"},
		{"upper case", Spec{Kind: "SPHERE", Radius: 1}, false, "sphere"},

		{"unknown kind", Spec{Kind: "torus", Radius: 1}, true, ""},
		{"empty kind", Spec{Radius: 1}, true, ""},
		{"zero radius", Spec{Kind: KindSphere}, true, ""},
		{"negative radius", Spec{Kind: KindSphere, Radius: -1}, true, ""},
		{"nan centre", Spec{Kind: KindSphere, Radius: 1, Centre: [3]float64{math.NaN(), 0, 0}}, true, ""},
		{"zero size", Spec{Kind: KindBox}, true, ""},
		{"negative size", Spec{Kind: KindBox, Size: [3]float64{1, -1, 1}}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.spec.Sampler()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Sampler() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidShape) {
					t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidShape)
				}
				return
			}
			switch s.(type) {
			case Sphere:
				if tt.wantType != "sphere" {
					t.Errorf("got Sphere, want %s", tt.wantType)
				}
			case Box:
				if tt.wantType != "box" {
					t.Errorf("got Box, want %s", tt.wantType)
				}
			}
		})
	}
}

func TestSpecCentre(t *testing.T) {
	s, err := Spec{Kind: KindBox, Centre: [3]float64{0, 2.5, 0}, Size: [3]float64{2, 5, 2}}.Sampler()
	if err != nil {
		t.Fatal(err)
	}
	box := s.(Box)
	if box.Centre != (r3.Vec{Y: 2.5}) {
		t.Errorf("Centre = %v", box.Centre)
	}
	if box.Size != (r3.Vec{X: 2, Y: 5, Z: 2}) {
		t.Errorf("Size = %v", box.Size)
	}
}

func TestSpecString(t *testing.T) {
	tests := []struct {
		spec Spec
		want string
	}{
		{Spec{Kind: KindSphere, Radius: 2, Centre: [3]float64{0, 3, 0}}, "sphere r=2 @ (0,3,0)"},
		{Spec{Kind: "rectangle", Size: [3]float64{2, 5, 2}, Centre: [3]float64{0, 2.5, 0}}, "box 2x5x2 @ (0,2.5,0)"},
	}
	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
