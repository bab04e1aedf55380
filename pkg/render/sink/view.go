package sink

import (
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/errors"
)

// View selects the axis plane a drawing is projected onto.
type View string

const (
	ViewFront View = "front" // X right, Y up
	ViewSide  View = "side"  // Z right, Y up
	ViewTop   View = "top"   // X right, Z up
)

// Views lists the supported views.
func Views() []string {
	return []string{string(ViewFront), string(ViewSide), string(ViewTop)}
}

// ParseView resolves a view name, case-insensitively. The empty string
// selects the front view.
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return ViewFront, nil
	case ViewFront, ViewSide, ViewTop:
		return v, nil
	}
	return "", errors.New(errors.ErrCodeInvalidView,
		"invalid view %q (must be one of: %s)", s, strings.Join(Views(), ", "))
}

// project maps a world position to plane coordinates (right, up).
func (v View) project(p r3.Vec) (float64, float64) {
	switch v {
	case ViewSide:
		return p.Z, p.Y
	case ViewTop:
		return p.X, p.Z
	}
	return p.X, p.Y
}
