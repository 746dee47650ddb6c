// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/pindac/audio"
	"github.com/ik5/pindac/internal/pcm"
)

// Decoder reads signed PCM AIFF files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	return newSource(dec, dec.Format(), int(dec.BitDepth))
}

// newSource checks the sample width and wraps dec.
func newSource(dec pcm.Reader, format *goaudio.Format, depth int) (audio.Source, error) {
	switch depth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, depth)
	}

	src, err := pcm.NewSource(dec, format, depth, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}
	return src, nil
}
