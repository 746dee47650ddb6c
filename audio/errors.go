// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize indicates a destination that does not hold whole frames
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidRate indicates a non-positive sample rate
	ErrInvalidRate = errors.New("sample rate must be positive")

	// ErrNoChannels indicates a source reporting zero channels
	ErrNoChannels = errors.New("source has no channels")

	// ErrRatioTooLarge indicates a rate ratio whose step does not fit 32 bits
	ErrRatioTooLarge = errors.New("resampling ratio too large")
)
