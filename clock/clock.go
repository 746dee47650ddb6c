// SPDX-License-Identifier: EPL-2.0

package clock

import (
	"fmt"
	"time"
)

const (
	// CPUFrequency is the core clock feeding the timer, in Hz.
	CPUFrequency = 16_000_000
	// Prescaler divides CPUFrequency before it reaches the timer counter.
	Prescaler = 8
)

// Rate is a timer compare-match value selecting the tick frequency.
type Rate uint8

const (
	Hz40k Rate = 49
	Hz20k Rate = 99
	Hz16k Rate = 124
	Hz24k Rate = 82
	Hz26k Rate = 75
)

// Default is the rate used when a configuration leaves it unset.
const Default = Hz40k

// Valid reports whether r is one of the supported rates.
func (r Rate) Valid() bool {
	switch r {
	case Hz40k, Hz20k, Hz16k, Hz24k, Hz26k:
		return true
	}
	return false
}

// Frequency returns the tick frequency in Hz.
func (r Rate) Frequency() float64 {
	return CPUFrequency / (Prescaler * (float64(r) + 1))
}

// Period returns the time between two ticks, truncated to the nanosecond.
func (r Rate) Period() time.Duration {
	return time.Duration(float64(time.Second) / r.Frequency())
}

// Hz returns the tick frequency rounded to the nearest whole Hz, for
// consumers such as audio devices that only accept integer rates.
func (r Rate) Hz() int {
	return int(r.Frequency() + 0.5)
}

func (r Rate) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rate(%d)", uint8(r))
	}
	return fmt.Sprintf("%.0fHz", r.Frequency())
}

// Check returns ErrUnknownRate wrapped with the offending value when r is
// not a supported rate.
func Check(r Rate) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownRate, uint8(r))
	}
	return nil
}
