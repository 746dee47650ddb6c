// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"github.com/ik5/pindac/pins"
	"github.com/ik5/pindac/sim"
)

// stream turns pulls from an audio device into engine ticks.
type stream struct {
	timer *sim.Timer
	sink  *pins.Sink
}

// Read fires one tick per byte of p and fills it with the pin values.
func (s *stream) Read(p []byte) (int, error) {
	for i := range p {
		s.timer.Fire()
		p[i] = s.sink.Value()
	}
	return len(p), nil
}
