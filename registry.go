// SPDX-License-Identifier: EPL-2.0

package wavemix

import (
	"io"
	"sync"

	"github.com/ik5/wavemix/formats/aiff"
	"github.com/ik5/wavemix/formats/mp3"
	"github.com/ik5/wavemix/formats/vorbis"
	"github.com/ik5/wavemix/formats/wav"
	"github.com/ik5/wavemix/wave"
)

// Decoder constructs a Wave from an input stream.
type Decoder[T wave.Float] interface {
	Decode(r io.ReadSeeker) (wave.Wave[T], error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry[T wave.Float] struct {
	codecs map[string]Decoder[T]

	mtx *sync.Mutex
}

func NewRegistry[T wave.Float]() *Registry[T] {
	return &Registry[T]{
		codecs: make(map[string]Decoder[T]),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry[T]) Register(format string, d Decoder[T]) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry[T]) Get(format string) (Decoder[T], bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// DefaultRegistry returns a Registry pre-populated with every decoder the
// module ships, keyed by the usual file extensions.
func DefaultRegistry[T wave.Float]() *Registry[T] {
	r := NewRegistry[T]()
	r.Register("wav", wav.Decoder[T]{})
	r.Register("aiff", aiff.Decoder[T]{})
	r.Register("aif", aiff.Decoder[T]{})
	r.Register("mp3", mp3.Decoder[T]{})
	r.Register("ogg", vorbis.Decoder[T]{})

	return r
}
