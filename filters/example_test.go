// SPDX-License-Identifier: EPL-2.0

package filters_test

import (
	"fmt"

	"github.com/ik5/wavemix/filters"
	"github.com/ik5/wavemix/wave"
)

// ExampleDownmixMono averages a stereo wave into mono.
func ExampleDownmixMono() {
	w, _ := wave.New([]float64{1, 0, 0.5, 0.5, 0, 1}, 44100, 2)

	mono, err := w.Filter(filters.DownmixMono[float64]())
	if err != nil {
		fmt.Println("downmix error:", err)
		return
	}

	fmt.Println(mono.Channels(), mono.Samples())
	// Output: 1 [0.5 0.5 0.5]
}

// ExampleGain composes with other filters through wave.Chain.
func ExampleGain() {
	w, _ := wave.New([]float64{0.5, -0.5}, 44100, 1)

	loud, err := w.Filter(wave.Chain(
		filters.Gain[float64](2),
		filters.Normalize[float64](1),
	))
	if err != nil {
		fmt.Println("filter error:", err)
		return
	}

	fmt.Println(loud.Samples())
	// Output: [1 -1]
}
