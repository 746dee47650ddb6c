//go:build !headless

// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/pindac/clock"
	"github.com/ik5/pindac/pins"
	"github.com/ik5/pindac/sim"
)

// bufferLatency is how much audio the device buffers ahead of the pins.
const bufferLatency = 40 * time.Millisecond

// Speaker is a tick source clocked by the host audio device.
type Speaker struct {
	*sim.Timer

	stream *stream

	mtx    sync.Mutex
	ctx    *oto.Context
	player *oto.Player
	rate   clock.Rate
}

// New returns a Speaker that listens to the pins of low and high at offset,
// the same registers and offset given to the engine.
func New(low, high pins.Register, offset uint8) *Speaker {
	timer := sim.NewTimer()

	return &Speaker{
		Timer: timer,
		stream: &stream{
			timer: timer,
			sink:  pins.NewSink(low, high, offset),
		},
	}
}

// Configure binds tick and opens the audio device at the tick frequency.
// The device can only be opened once per process.
func (s *Speaker) Configure(rate clock.Rate, tick func()) error {
	if err := s.Timer.Configure(rate, tick); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.ctx != nil {
		if s.rate != rate {
			return fmt.Errorf("%w: open at %v, asked for %v", ErrAlreadyOpen, s.rate, rate)
		}
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   rate.Hz(),
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
		BufferSize:   bufferLatency,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}
	<-ready

	s.ctx = ctx
	s.rate = rate
	s.player = ctx.NewPlayer(s.stream)

	return nil
}

// Start lets the device pull samples, and so drive ticks.
func (s *Speaker) Start() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.player == nil {
		return ErrNotOpen
	}
	if !s.player.IsPlaying() {
		s.player.Play()
	}
	return nil
}

// Close pauses playback and suspends the device. Ticks stop with it.
func (s *Speaker) Close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.player != nil {
		s.player.Pause()
	}
	if s.ctx != nil {
		if err := s.ctx.Suspend(); err != nil {
			return fmt.Errorf("suspending audio device: %w", err)
		}
	}
	return nil
}
