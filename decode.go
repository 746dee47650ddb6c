// SPDX-License-Identifier: EPL-2.0

package pindac

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/pindac/audio"
	"github.com/ik5/pindac/formats/aiff"
	"github.com/ik5/pindac/formats/mp3"
	"github.com/ik5/pindac/formats/vorbis"
	"github.com/ik5/pindac/formats/wav"
)

// NewRegistry returns a registry holding every bundled decoder under its
// usual file extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// formatKey normalizes "WAV" or ".wav" to "wav".
func formatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

// Decode decodes r with the bundled decoder for format.
func Decode(format string, r io.Reader) (audio.Source, error) {
	dec, ok := defaultRegistry().Get(formatKey(format))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}

// fileSource closes the file a decoder streams from along with it.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}

// Open decodes the file at path, picking the decoder by extension. Closing
// the source closes the file.
func Open(path string) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := Decode(filepath.Ext(path), f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}
