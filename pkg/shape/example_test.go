package shape_test

import (
	"fmt"

	"github.com/matzehuels/arbor/pkg/rng"
	"github.com/matzehuels/arbor/pkg/shape"
)

func ExampleSpec_Sampler() {
	crown := shape.Spec{Kind: shape.KindSphere, Centre: [3]float64{0, 3, 0}, Radius: 2}
	s, err := crown.Sampler()
	if err != nil {
		panic(err)
	}

	pts := shape.Points(s, rng.New(42), 500)
	fmt.Println(crown, len(pts))
	// Output: sphere r=2 @ (0,3,0) 500
}
