package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(2),
		core.WithBlockSize(4096),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=2 blockSize=4096
}

func ExampleArange() {
	points, err := core.Arange(-1, 1, 0.5)
	if err != nil {
		panic(err)
	}

	fmt.Println(points)

	// Output:
	// [-1 -0.5 0 0.5]
}
