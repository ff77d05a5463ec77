// SPDX-License-Identifier: EPL-2.0

package wavemix

import (
	"io"
	"testing"

	"github.com/ik5/wavemix/wave"
)

// mockDecoder is a test decoder implementation.
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.ReadSeeker) (wave.Wave[float64], error) {
	return wave.Silence[float64](4, 44100, 1)
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry[float64]()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry[float64]()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry[float64]()
	decoder1 := &mockDecoder{name: "first"}
	decoder2 := &mockDecoder{name: "second"}

	registry.Register("wav", decoder1)
	registry.Register("wav", decoder2)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != decoder2 {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry[float64]()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			registry.Register("format", decoder)
			registry.Get("format")
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	if _, ok := registry.Get("format"); !ok {
		t.Error("Registry.Get() failed after concurrent access")
	}
}

func TestDefaultRegistry_CoversShippedFormats(t *testing.T) {
	t.Parallel()

	registry := DefaultRegistry[float64]()

	for _, format := range []string{"wav", "aiff", "aif", "mp3", "ogg"} {
		if _, ok := registry.Get(format); !ok {
			t.Errorf("DefaultRegistry missing decoder for %q", format)
		}
	}

	if _, ok := registry.Get("flac"); ok {
		t.Error("DefaultRegistry unexpectedly has a flac decoder")
	}
}
