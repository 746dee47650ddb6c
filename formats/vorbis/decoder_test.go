// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ik5/pindac/audio"
)

// mockOggReader returns interleaved samples, at most len(p) per call.
type mockOggReader struct {
	rate     int
	channels int
	samples  []float32
	err      error
}

func (m *mockOggReader) SampleRate() int { return m.rate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(p []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(p, m.samples)
	m.samples = m.samples[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, input := range [][]byte{nil, []byte("This is not Ogg data")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(input)); !errors.Is(err, ErrNotVorbis) {
			t.Errorf("Decode(%q) error = %v, want %v", input, err, ErrNotVorbis)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggReader{rate: 48000, channels: 2}}
	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggReader{
		rate:     44100,
		channels: 2,
		samples:  []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3},
	}}

	// five slots hold two whole frames
	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if diff := cmp.Diff([]float32{0.1, -0.1, 0.2, -0.2}, dst[:n]); diff != "" {
		t.Errorf("first read mismatch (-want +got):\n%s", diff)
	}

	n, err = src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if diff := cmp.Diff([]float32{0.3, -0.3}, dst[:n]); diff != "" {
		t.Errorf("second read mismatch (-want +got):\n%s", diff)
	}

	if n, err := src.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() at end = %d, %v, want 0, EOF", n, err)
	}
	if n, err := src.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, EOF", n, err)
	}
}

func TestSource_ShortDst(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggReader{rate: 44100, channels: 2, samples: []float32{1, 1}}}
	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples() = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_NoChannels(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggReader{rate: 44100, samples: []float32{1, 1}}}
	if n, err := src.ReadSamples(make([]float32, 4)); n != 0 || !errors.Is(err, audio.ErrNoChannels) {
		t.Errorf("ReadSamples() = %d, %v, want 0, %v", n, err, audio.ErrNoChannels)
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	broken := errors.New("corrupt page")
	src := &source{dec: &mockOggReader{rate: 44100, channels: 1, err: broken}}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, broken) {
		t.Errorf("ReadSamples() error = %v, want %v", err, broken)
	}
}

func TestErrNotVorbis(t *testing.T) {
	t.Parallel()

	if ErrNotVorbis.Error() != "not an Ogg Vorbis stream" {
		t.Errorf("ErrNotVorbis = %q", ErrNotVorbis.Error())
	}
}
