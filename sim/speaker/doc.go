// SPDX-License-Identifier: EPL-2.0

// Package speaker plays a simulated pin DAC through the host sound card.
//
// A Speaker is an engine.TickSource whose clock is the audio device: every
// byte the device pulls fires one tick, then the byte presented on the
// output pins is handed over as unsigned 8-bit PCM. The engine therefore runs
// at exactly the device rate, with the same mixing and pin packing it uses on
// hardware.
//
//	b := sim.NewBoard()
//	spk := speaker.New(b.Low, b.High, 2)
//	e, _ := engine.New(engine.Config{Ticks: spk, Low: b.Low, High: b.High, PinOffset: 2})
//	_ = e.Play(tone)
//	spk.Start()
//	defer spk.Close()
//
// The device is opened by Configure but only starts pulling on Start, since
// the audio library may read ahead synchronously and the engine configures
// its tick source with the tick masked.
//
// Build with the headless tag to leave out the audio device, for machines
// without sound libraries.
package speaker
