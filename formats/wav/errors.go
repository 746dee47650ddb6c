// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the stream is not a RIFF/WAVE file
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrNotPCM indicates a compressed or floating-point WAV
	ErrNotPCM = errors.New("only integer PCM WAV is supported")

	// ErrInvalidRate indicates a non-positive sample rate for writing
	ErrInvalidRate = errors.New("sample rate must be positive")
)
