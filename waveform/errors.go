// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	// ErrEmptyBuffer indicates a waveform without samples
	ErrEmptyBuffer = errors.New("waveform buffer is empty")

	// ErrBufferTooLong indicates a buffer that cannot be indexed with 16 bits
	ErrBufferTooLong = errors.New("waveform buffer exceeds 65535 samples")

	// ErrInvalidDuration indicates a non-positive or non-finite duration
	ErrInvalidDuration = errors.New("invalid waveform duration")

	// ErrInvalidFrequency indicates a non-positive sample frequency
	ErrInvalidFrequency = errors.New("invalid sample frequency")

	// ErrStepOverflow indicates a step too large for single-wrap stepping
	ErrStepOverflow = errors.New("waveform step too large for buffer")

	// ErrUnknownUnit indicates a duration unit outside the supported set
	ErrUnknownUnit = errors.New("unknown duration unit")
)
