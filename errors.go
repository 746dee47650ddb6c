// SPDX-License-Identifier: EPL-2.0

package pindac

import "errors"

var (
	// ErrUnknownFormat indicates no decoder is registered for a format
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrEmptyTable indicates a source that produced no samples
	ErrEmptyTable = errors.New("source produced no samples")

	// ErrTableTooLong indicates more samples than a waveform can index
	ErrTableTooLong = errors.New("sample table too long")
)
