package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-pulse/dsp/core"
	"github.com/cwbudde/algo-pulse/dsp/signal"
)

func ExampleGenerator_Render() {
	g := signal.NewGenerator(core.WithSampleRate(2))
	square := signal.ShaperFunc(func(t float64) float64 { return t * t })

	x, err := g.Render(square, 0, 5)
	if err != nil {
		panic(err)
	}

	fmt.Println(x)

	// Output:
	// [0 0.25 1 2.25 4]
}

func ExampleNormalize() {
	x, err := signal.Normalize([]float64{-0.5, 0.25, 1}, 0.8)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f\n", x[0], x[1], x[2])

	// Output:
	// -0.40 0.20 0.80
}
