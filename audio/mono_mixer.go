// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages the channels of each frame into one sample.
type MonoMixer struct {
	src    Source
	frames []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples reads up to len(dst) frames and writes one sample per frame.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	ch := m.src.Channels()
	if ch == 1 {
		return m.src.ReadSamples(dst)
	}
	if ch < 1 {
		return 0, ErrNoChannels
	}

	need := len(dst) * ch
	if cap(m.frames) < need {
		m.frames = make([]float32, need)
	}
	buf := m.frames[:need]

	n, err := m.src.ReadSamples(buf)
	frames := n / ch
	scale := 1 / float32(ch)

	for f := range frames {
		var sum float32
		for _, v := range buf[f*ch : (f+1)*ch] {
			sum += v
		}
		dst[f] = sum * scale
	}

	return frames, err
}
