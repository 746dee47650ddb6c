// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"sync"
)

// Source is a decoded PCM stream.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count, 1 for mono.
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1,1] and returns
	// the number of values written, not frames. n == 0 with io.EOF ends the
	// stream.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases the underlying decoder.
	Close() error
}

// Decoder constructs a Source from an encoded stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// DecoderFunc adapts a function to a Decoder.
type DecoderFunc func(r io.Reader) (Source, error)

// Decode calls f(r).
func (f DecoderFunc) Decode(r io.Reader) (Source, error) { return f(r) }

// Registry maps format keys ("wav", "mp3", ...) to decoders.
type Registry struct {
	mtx    sync.RWMutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register binds d to format, replacing any previous decoder.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
