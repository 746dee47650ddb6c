// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrTooManyChannels indicates a Play call with more than MaxChannels waveforms
	ErrTooManyChannels = errors.New("too many channels")

	// ErrNilChannel indicates a nil or unconfigured waveform passed to Play
	ErrNilChannel = errors.New("channel waveform is nil or unconfigured")

	// ErrNoTickSource indicates a Config without a tick source
	ErrNoTickSource = errors.New("no tick source")

	// ErrNoRegisters indicates a Config missing one of the output registers
	ErrNoRegisters = errors.New("output registers not set")

	// ErrNoProgramMemory indicates Flash read mode without a reader
	ErrNoProgramMemory = errors.New("flash read mode needs a program memory reader")

	// ErrUnknownReadMode indicates a read mode outside RAM and Flash
	ErrUnknownReadMode = errors.New("unknown read mode")
)
