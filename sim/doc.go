// SPDX-License-Identifier: EPL-2.0

// Package sim provides host-side stand-ins for the hardware an engine.Engine
// drives, so playback can be exercised and recorded without a
// microcontroller.
//
// # Registers
//
// Register is an 8-bit port held in memory. Board groups the four registers
// of a two-port pin DAC:
//
//	b := sim.NewBoard()
//	e, _ := engine.New(engine.Config{
//	    Ticks: timer, Low: b.Low, High: b.High,
//	    LowDir: b.LowDir, HighDir: b.HighDir,
//	})
//
// # Timer
//
// Timer implements engine.TickSource. The interrupt mask is a mutex: Disable
// locks it, Enable unlocks it, and every tick runs with it held, so a tick
// never overlaps a channel update. Ticks are fired explicitly with Fire and
// Advance, or paced against the wall clock with Run:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//	_ = timer.Run(ctx)
//
// # Program Memory
//
// ROM implements waveform.Reader for engines configured in Flash mode and
// counts the loads it serves.
//
// # Recording
//
// Recorder fires ticks and samples the byte presented on the pins after each
// one, producing unsigned 8-bit PCM at the tick rate. Pair it with
// formats/wav.WriteWAV8 to listen to a render.
package sim
