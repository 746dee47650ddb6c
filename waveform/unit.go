// SPDX-License-Identifier: EPL-2.0

package waveform

import "fmt"

// Unit tells how a duration passed to New, Configure or SetDuration is read.
type Unit uint8

const (
	// Hertz reads the duration as buffer cycles per second.
	Hertz Unit = iota
	// Milliseconds reads the duration as the length of one buffer cycle.
	Milliseconds
	// Microseconds reads the duration as the length of one buffer cycle.
	Microseconds
	// Native plays one stored sample per tick and ignores the duration.
	Native
)

func (u Unit) String() string {
	switch u {
	case Hertz:
		return "Hz"
	case Milliseconds:
		return "ms"
	case Microseconds:
		return "µs"
	case Native:
		return "native"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// cyclesPerSecond converts a duration in u to buffer cycles per second.
func (u Unit) cyclesPerSecond(duration float64) (float64, error) {
	switch u {
	case Hertz:
		return duration, nil
	case Milliseconds:
		return 1e3 / duration, nil
	case Microseconds:
		return 1e6 / duration, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownUnit, u)
}
