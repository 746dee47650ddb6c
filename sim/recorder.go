// SPDX-License-Identifier: EPL-2.0

package sim

import (
	"slices"

	"github.com/ik5/pindac/pins"
)

// Recorder captures the pin output of a timer-driven engine, one byte per
// tick.
type Recorder struct {
	timer   *Timer
	sink    *pins.Sink
	samples []uint8
}

// NewRecorder records what sink presents after each tick of timer.
func NewRecorder(timer *Timer, sink *pins.Sink) *Recorder {
	return &Recorder{
		timer: timer,
		sink:  sink,
	}
}

// Record fires n ticks and appends the resulting pin values.
func (r *Recorder) Record(n int) {
	r.samples = slices.Grow(r.samples, n)
	for range n {
		r.timer.Fire()
		r.samples = append(r.samples, r.sink.Value())
	}
}

// Samples returns everything recorded so far. The slice is shared with the
// Recorder until Reset.
func (r *Recorder) Samples() []uint8 { return r.samples }

// Reset drops the recorded samples.
func (r *Recorder) Reset() { r.samples = nil }
