// SPDX-License-Identifier: EPL-2.0

package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ik5/pindac/clock"
	"github.com/ik5/pindac/pins"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	r := NewRegister(0x5A)
	if r.Get() != 0x5A {
		t.Errorf("Get() = %#x, want 0x5a", r.Get())
	}

	r.Set(0x01)
	r.Set(0x02)
	if r.Get() != 0x02 {
		t.Errorf("Get() = %#x, want 0x02", r.Get())
	}
	if r.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", r.Writes())
	}
}

func TestBoard_ImplementsRegister(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	var _ pins.Register = b.Low
	var _ pins.Register = b.HighDir

	s := pins.NewSink(b.Low, b.High, 2)
	s.Put(0xC3)
	if s.Value() != 0xC3 {
		t.Errorf("Value() = %#x, want 0xc3", s.Value())
	}
}

func TestTimer_FireBeforeConfigure(t *testing.T) {
	t.Parallel()

	tm := NewTimer()
	tm.Fire()

	if tm.Fired() != 0 {
		t.Errorf("Fired() = %d, want 0", tm.Fired())
	}
}

func TestTimer_Configure(t *testing.T) {
	t.Parallel()

	tm := NewTimer()
	calls := 0

	if err := tm.Configure(clock.Rate(1), func() { calls++ }); !errors.Is(err, clock.ErrUnknownRate) {
		t.Errorf("Configure(1) error = %v, want ErrUnknownRate", err)
	}

	if err := tm.Configure(clock.Hz20k, func() { calls++ }); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if tm.Rate() != clock.Hz20k {
		t.Errorf("Rate() = %v, want %v", tm.Rate(), clock.Hz20k)
	}

	tm.Advance(5)
	if calls != 5 || tm.Fired() != 5 {
		t.Errorf("calls = %d, Fired() = %d, want 5 and 5", calls, tm.Fired())
	}
}

func TestTimer_ConfigureWhileMasked(t *testing.T) {
	t.Parallel()

	tm := NewTimer()

	done := make(chan error, 1)
	go func() {
		tm.Disable()
		err := tm.Configure(clock.Hz16k, func() {})
		tm.Enable()
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Configure() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Configure() blocked while the tick was masked")
	}
}

func TestTimer_DisableHoldsTicks(t *testing.T) {
	t.Parallel()

	tm := NewTimer()
	if err := tm.Configure(clock.Hz40k, func() {}); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	tm.Disable()

	fired := make(chan struct{})
	go func() {
		tm.Fire()
		close(fired)
	}()

	select {
	case <-fired:
		t.Fatal("Fire() ran while the tick was masked")
	case <-time.After(20 * time.Millisecond):
	}

	tm.Enable()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("Fire() did not run after Enable()")
	}
}

func TestTimer_Run(t *testing.T) {
	t.Parallel()

	tm := NewTimer()
	if err := tm.Configure(clock.Hz16k, func() {}); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := tm.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want context.DeadlineExceeded", err)
	}

	// 50ms at 16kHz is 800 ticks; a late scheduler may add a few bursts
	if got := tm.Fired(); got == 0 || got > 1600 {
		t.Errorf("Fired() = %d, want in (0, 1600]", got)
	}
}

func TestTimer_RunNotConfigured(t *testing.T) {
	t.Parallel()

	if err := NewTimer().Run(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Run() error = %v, want ErrNotConfigured", err)
	}
}

func TestROM(t *testing.T) {
	t.Parallel()

	var rom ROM
	data := []uint8{7, 8, 9}

	if got := rom.Load(data, 2); got != 9 {
		t.Errorf("Load(2) = %d, want 9", got)
	}
	rom.Load(data, 0)

	if rom.Loads() != 2 {
		t.Errorf("Loads() = %d, want 2", rom.Loads())
	}
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	sink := pins.NewSink(b.Low, b.High, 4)
	tm := NewTimer()

	next := uint8(0)
	if err := tm.Configure(clock.Hz40k, func() {
		next += 3
		sink.Put(next)
	}); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	rec := NewRecorder(tm, sink)
	rec.Record(4)
	rec.Record(1)

	want := []uint8{3, 6, 9, 12, 15}
	got := rec.Samples()
	if len(got) != len(want) {
		t.Fatalf("Samples() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Samples()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	rec.Reset()
	if len(rec.Samples()) != 0 {
		t.Errorf("Samples() after Reset = %v, want empty", rec.Samples())
	}
}

func TestErrNotConfigured(t *testing.T) {
	t.Parallel()

	if ErrNotConfigured.Error() != "timer not configured" {
		t.Errorf("ErrNotConfigured.Error() = %q", ErrNotConfigured.Error())
	}
}
