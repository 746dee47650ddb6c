// SPDX-License-Identifier: EPL-2.0

package sim

import "sync/atomic"

// ROM serves sample reads for engines in Flash mode.
type ROM struct {
	loads atomic.Uint64
}

func (r *ROM) Load(data []uint8, i uint16) uint8 {
	r.loads.Add(1)
	return data[i]
}

// Loads returns how many samples were read.
func (r *ROM) Loads() uint64 { return r.loads.Load() }
