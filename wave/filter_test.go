// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"testing"
)

func double(w Wave[float64]) (Wave[float64], error) {
	out := make([]float64, w.Len())
	for i, s := range w.Samples() {
		out[i] = s * 2
	}
	return New(out, w.SampleRate(), w.Channels())
}

func addOne(w Wave[float64]) (Wave[float64], error) {
	out := make([]float64, w.Len())
	for i, s := range w.Samples() {
		out[i] = s + 1
	}
	return New(out, w.SampleRate(), w.Channels())
}

func TestWave_Filter(t *testing.T) {
	t.Parallel()

	w, _ := New([]float64{1, 2, 3}, 44100, 1)

	got, err := w.Filter(double)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}

	if !samplesEqual(got.Samples(), []float64{2, 4, 6}) {
		t.Errorf("Filter(double) samples = %v, want [2 4 6]", got.Samples())
	}
}

// Chained application through the method must equal explicit composition:
// w.Filter(f1).Filter(f2) == f2(f1(w)).
func TestWave_Filter_ChainEquivalence(t *testing.T) {
	t.Parallel()

	w, _ := New([]float64{1, -2, 3.5}, 44100, 1)

	viaMethod, err := w.Filter(double)
	if err != nil {
		t.Fatalf("Filter(double) error = %v", err)
	}
	viaMethod, err = viaMethod.Filter(addOne)
	if err != nil {
		t.Fatalf("Filter(addOne) error = %v", err)
	}

	intermediate, err := double(w)
	if err != nil {
		t.Fatalf("double() error = %v", err)
	}
	explicit, err := addOne(intermediate)
	if err != nil {
		t.Fatalf("addOne() error = %v", err)
	}

	if !samplesEqual(viaMethod.Samples(), explicit.Samples()) {
		t.Errorf("chained = %v, explicit composition = %v", viaMethod.Samples(), explicit.Samples())
	}
}

func TestWave_Filter_ErrorWrapped(t *testing.T) {
	t.Parallel()

	cause := errors.New("coefficient blew up")
	failing := Filter[float64](func(Wave[float64]) (Wave[float64], error) {
		return Wave[float64]{}, cause
	})

	w, _ := New([]float64{1}, 44100, 1)

	_, err := w.Filter(failing)
	if !errors.Is(err, ErrFilterFailed) {
		t.Errorf("Filter() error = %v, want ErrFilterFailed", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Filter() error = %v, does not wrap the underlying cause", err)
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	w, _ := New([]float64{1, 2}, 44100, 1)

	got, err := w.Filter(Chain(double, addOne))
	if err != nil {
		t.Fatalf("Filter(Chain) error = %v", err)
	}

	// Chain applies first to last: (x*2)+1.
	if !samplesEqual(got.Samples(), []float64{3, 5}) {
		t.Errorf("Chain(double, addOne) samples = %v, want [3 5]", got.Samples())
	}
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	w, _ := New([]float64{1, 2}, 44100, 1)

	got, err := w.Filter(Chain[float64]())
	if err != nil {
		t.Fatalf("Filter(empty Chain) error = %v", err)
	}

	if !samplesEqual(got.Samples(), w.Samples()) {
		t.Errorf("empty Chain samples = %v, want %v", got.Samples(), w.Samples())
	}
}

func TestChain_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	calls := 0

	failing := Filter[float64](func(Wave[float64]) (Wave[float64], error) {
		return Wave[float64]{}, cause
	})
	counting := Filter[float64](func(w Wave[float64]) (Wave[float64], error) {
		calls++
		return w, nil
	})

	w, _ := New([]float64{1}, 44100, 1)

	_, err := w.Filter(Chain(failing, counting))
	if !errors.Is(err, cause) {
		t.Errorf("Chain error = %v, want underlying cause", err)
	}
	if calls != 0 {
		t.Errorf("filters after a failure ran %d times, want 0", calls)
	}
}
