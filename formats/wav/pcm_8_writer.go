// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV8 writes samples as a mono, unsigned 8-bit PCM WAV file. These
// are the bytes a pin DAC presents, so a capture plays back as heard.
func WriteWAV8(w io.Writer, sampleRate int, samples []uint8) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}

	ws, direct := w.(io.WriteSeeker)
	var mem *writeSeeker
	if !direct {
		mem = &writeSeeker{}
		ws = mem
	}

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}

	enc := wav.NewEncoder(ws, sampleRate, 8, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav header: %w", err)
	}

	if mem != nil {
		if _, err := w.Write(mem.data); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// writeSeeker is an in-memory io.WriteSeeker; the encoder seeks back to
// patch chunk sizes once the data is written.
type writeSeeker struct {
	data   []byte
	offset int64
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	end := ws.offset + int64(len(p))
	if end > int64(len(ws.data)) {
		ws.data = append(ws.data, make([]byte, end-int64(len(ws.data)))...)
	}
	copy(ws.data[ws.offset:], p)
	ws.offset = end
	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = ws.offset + offset
	case io.SeekEnd:
		next = int64(len(ws.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if next < 0 {
		return 0, errors.New("negative position")
	}

	ws.offset = next
	return next, nil
}
