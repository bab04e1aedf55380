package shape

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/rng"
)

// Sampler draws one point from a volume. Successive calls are independent and
// identically distributed over the volume.
type Sampler interface {
	Sample(src rng.Source) r3.Vec
}

// Sphere samples uniformly inside a ball.
type Sphere struct {
	Centre r3.Vec
	Radius float64
}

// Sample returns a point inside the ball. The radial magnitude is the cube root
// of a uniform variate so that density is uniform by volume rather than
// clustered at the centre.
func (s Sphere) Sample(src rng.Source) r3.Vec {
	var dir r3.Vec
	for {
		dir = r3.Vec{
			X: src.Float64() - 0.5,
			Y: src.Float64() - 0.5,
			Z: src.Float64() - 0.5,
		}
		if r3.Norm2(dir) > 0 {
			break
		}
	}
	dir = r3.Unit(dir)
	magnitude := math.Cbrt(src.Float64()) * s.Radius
	return r3.Add(s.Centre, r3.Scale(magnitude, dir))
}

// Box samples uniformly inside an axis-aligned box of the given full size.
type Box struct {
	Centre r3.Vec
	Size   r3.Vec
}

// Sample returns a point with |offset| <= Size/2 on every axis.
func (b Box) Sample(src rng.Source) r3.Vec {
	half := r3.Scale(0.5, b.Size)
	return r3.Vec{
		X: b.Centre.X + between(src, -half.X, half.X),
		Y: b.Centre.Y + between(src, -half.Y, half.Y),
		Z: b.Centre.Z + between(src, -half.Z, half.Z),
	}
}

func between(src rng.Source, lo, hi float64) float64 {
	return src.Float64()*(hi-lo) + lo
}

// Points draws n samples from s.
func Points(s Sampler, src rng.Source, n int) []r3.Vec {
	if n <= 0 {
		return nil
	}
	pts := make([]r3.Vec, n)
	for i := range pts {
		pts[i] = s.Sample(src)
	}
	return pts
}

var (
	_ Sampler = Sphere{}
	_ Sampler = Box{}
)
