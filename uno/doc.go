// SPDX-License-Identifier: EPL-2.0

// Package uno binds the engine to an ATmega328P (Arduino Uno) under TinyGo.
//
// # Tick source
//
// Timer2 runs in CTC mode with a prescaler of 8 and compares against the
// clock.Rate value, so the compare-match A interrupt fires at
// rate.Frequency(). The engine tick runs inside that interrupt.
//
// # Pins
//
// The low part of each sample goes to PORTD from the pin offset upward; the
// high part goes to the bottom of PORTB. With offset 2 the ladder spans
// digital pins 2 to 9, leaving the serial pins 0 and 1 free.
//
//	low, high, lowDir, highDir := uno.Ports()
//	e, err := engine.New(engine.Config{
//		Ticks: &uno.Timer2{},
//		Low: low, High: high, LowDir: lowDir, HighDir: highDir,
//		PinOffset: 2,
//		Rate: clock.Hz20k,
//	})
//
// The package builds only with TinyGo for AVR targets.
package uno
