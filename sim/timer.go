// SPDX-License-Identifier: EPL-2.0

package sim

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/pindac/clock"
)

// pace is how often Run catches up with the wall clock.
const pace = time.Millisecond

// Timer is a software tick source. The zero value is ready for Configure.
type Timer struct {
	mask  sync.Mutex
	tick  atomic.Pointer[func()]
	rate  atomic.Uint32
	fired atomic.Uint64
}

// NewTimer returns an unconfigured Timer.
func NewTimer() *Timer {
	return &Timer{}
}

// Configure binds tick at rate. It does not take the mask, so it may be
// called between Disable and Enable.
func (t *Timer) Configure(rate clock.Rate, tick func()) error {
	if err := clock.Check(rate); err != nil {
		return fmt.Errorf("%w", err)
	}

	t.rate.Store(uint32(rate))
	t.tick.Store(&tick)

	return nil
}

// Disable masks the tick. Calls must not nest.
func (t *Timer) Disable() { t.mask.Lock() }

// Enable unmasks the tick.
func (t *Timer) Enable() { t.mask.Unlock() }

// Rate returns the configured rate, zero before Configure.
func (t *Timer) Rate() clock.Rate { return clock.Rate(t.rate.Load()) }

// Fired returns the number of ticks delivered so far.
func (t *Timer) Fired() uint64 { return t.fired.Load() }

// Fire delivers one tick, waiting while the tick is masked. It does nothing
// before Configure.
func (t *Timer) Fire() {
	tick := t.tick.Load()
	if tick == nil {
		return
	}

	t.mask.Lock()
	(*tick)()
	t.fired.Add(1)
	t.mask.Unlock()
}

// Advance delivers n ticks back to back.
func (t *Timer) Advance(n int) {
	for range n {
		t.Fire()
	}
}

// Run delivers ticks at the configured rate until ctx is done, catching up
// in bursts every millisecond. It returns ctx.Err().
func (t *Timer) Run(ctx context.Context) error {
	rate := t.Rate()
	if t.tick.Load() == nil || !rate.Valid() {
		return ErrNotConfigured
	}
	freq := rate.Frequency()

	ticker := time.NewTicker(pace)
	defer ticker.Stop()

	start := time.Now()
	var delivered uint64

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			due := uint64(now.Sub(start).Seconds() * freq)
			for ; delivered < due; delivered++ {
				t.Fire()
			}
		}
	}
}
