// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/pindac/audio"
	"github.com/ik5/pindac/internal/pcm"
	"github.com/ik5/pindac/utils"
)

// formatPCM is the WAVE_FORMAT_PCM tag.
const formatPCM = 1

// Decoder reads integer PCM WAV files of 8, 16, 24 or 32 bits.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrNotPCM, dec.WavAudioFormat)
	}

	// 8-bit WAV is unsigned, everything wider is signed
	bias := 0
	if dec.BitDepth == 8 {
		bias = utils.Midpoint
	}

	src, err := pcm.NewSource(dec, dec.Format(), int(dec.BitDepth), bias)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}
