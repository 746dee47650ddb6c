// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/google/go-cmp/cmp"
)

// mockAiffReader hands out samples like aiff.Decoder.PCMBuffer.
type mockAiffReader struct {
	samples []int
	offset  int
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

// writeAIFF encodes samples into a temporary file and returns its path.
func writeAIFF(t *testing.T, rate, channels int, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := aiff.NewEncoder(f, rate, 16, channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encoder Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("encoder Close() error = %v", err)
	}

	return path
}

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	path := writeAIFF(t, 22050, 2, []int{16384, -16384, 0, 8192})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Errorf("format = %d Hz x %d, want 22050 Hz x 2", src.SampleRate(), src.Channels())
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	want := []float32{0.5, -0.5, 0, 0.25}
	if diff := cmp.Diff(want, dst[:n]); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_NotAIFF(t *testing.T) {
	t.Parallel()

	for _, input := range []io.Reader{
		strings.NewReader("This is not AIFF data"),
		bytes.NewReader(nil),
	} {
		if _, err := (Decoder{}).Decode(input); !errors.Is(err, ErrNotAiffFile) {
			t.Errorf("Decode() error = %v, want %v", err, ErrNotAiffFile)
		}
	}
}

func TestNewSource_BitDepth(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{NumChannels: 1, SampleRate: 8000}

	tests := []struct {
		depth int
		want  error
	}{
		{depth: 8, want: ErrUnsupportedBitDepth},
		{depth: 12, want: ErrUnsupportedBitDepth},
		{depth: 16},
		{depth: 24},
		{depth: 32},
	}

	for _, tt := range tests {
		_, err := newSource(&mockAiffReader{}, format, tt.depth)
		if !errors.Is(err, tt.want) {
			t.Errorf("newSource(%d bits) error = %v, want %v", tt.depth, err, tt.want)
		}
	}
}

func TestNewSource_MissingFormat(t *testing.T) {
	t.Parallel()

	if _, err := newSource(&mockAiffReader{}, nil, 16); !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("newSource() error = %v, want %v", err, ErrNotAiffFile)
	}
}

func TestNewSource_Normalization(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{NumChannels: 1, SampleRate: 8000}
	src, err := newSource(&mockAiffReader{samples: []int{4194304, -8388608}}, format, 24)
	if err != nil {
		t.Fatalf("newSource() error = %v", err)
	}

	dst := make([]float32, 2)
	if _, err := src.ReadSamples(dst); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if diff := cmp.Diff([]float32{0.5, -1}, dst); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	if ErrNotAiffFile.Error() != "not an AIFF file" {
		t.Errorf("ErrNotAiffFile = %q", ErrNotAiffFile.Error())
	}
	if ErrUnsupportedBitDepth.Error() != "only 16, 24 and 32-bit AIFF is supported" {
		t.Errorf("ErrUnsupportedBitDepth = %q", ErrUnsupportedBitDepth.Error())
	}
	if errors.Is(ErrNotAiffFile, ErrUnsupportedBitDepth) {
		t.Error("sentinels are not distinct")
	}
}
