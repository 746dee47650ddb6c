//go:build tinygo && avr

// SPDX-License-Identifier: EPL-2.0

package uno

import (
	"device/avr"
	"runtime/interrupt"

	"github.com/ik5/pindac/clock"
	"github.com/ik5/pindac/pins"
)

// handler is the engine tick run from the Timer2 compare-match vector.
var handler func()

func compareMatchA(interrupt.Interrupt) {
	if handler != nil {
		handler()
	}
}

// Timer2 is an engine.TickSource backed by the 8-bit Timer2.
type Timer2 struct {
	state interrupt.State
}

// Configure programs Timer2 for rate and routes its interrupt to tick.
func (t *Timer2) Configure(rate clock.Rate, tick func()) error {
	if err := clock.Check(rate); err != nil {
		return err
	}

	handler = tick

	avr.TCCR2A.Set(0)
	avr.TCCR2B.Set(0)
	avr.TCNT2.Set(0)
	avr.OCR2A.Set(uint8(rate))

	avr.TCCR2A.SetBits(avr.TCCR2A_WGM21)
	avr.TCCR2B.SetBits(avr.TCCR2B_CS21)
	avr.TIMSK2.SetBits(avr.TIMSK2_OCIE2A)

	interrupt.New(avr.IRQ_TIMER2_COMPA, compareMatchA)

	return nil
}

// Disable masks interrupts, saving the previous state.
func (t *Timer2) Disable() {
	t.state = interrupt.Disable()
}

// Enable restores the state saved by Disable.
func (t *Timer2) Enable() {
	interrupt.Restore(t.state)
}

// Ports returns the output and direction registers the ladder is wired to.
func Ports() (low, high, lowDir, highDir pins.Register) {
	return avr.PORTD, avr.PORTB, avr.DDRD, avr.DDRB
}
